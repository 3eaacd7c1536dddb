package linkdrop

import "context"

// AnalysisResult is the output of analyzing one input string. Immutable
// once returned.
type AnalysisResult struct {
	ContentType ContentType `json:"contentType"`
	Metadata    *Metadata   `json:"metadata"`
	Confidence  float64     `json:"confidence"`
}

// Analyzer turns one input string (URL or free text) into an analysis
// result.
type Analyzer interface {
	// Analyze classifies the input, gathers and merges source metadata,
	// and applies per-type enhancement. It is total: any internal failure
	// degrades to a minimal bookmark record instead of surfacing an
	// error, so callers never see one.
	Analyze(ctx context.Context, input string) *AnalysisResult
}

// AnalysisCache stores completed analysis results keyed by normalized
// URL, so repeated captures of the same link skip the network.
type AnalysisCache interface {
	// Get returns the cached result for a URL.
	// Returns ENOTFOUND on a miss or an expired entry.
	Get(ctx context.Context, url string) (*AnalysisResult, error)

	// Put stores a result for a URL, replacing any previous entry.
	Put(ctx context.Context, url string, result *AnalysisResult) error

	// Clear removes all cached entries.
	Clear(ctx context.Context) error
}

// Summarizer produces a short natural-language summary of extracted
// content, used to enrich items whose sources yielded a long body but no
// usable description.
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (string, error)
}
