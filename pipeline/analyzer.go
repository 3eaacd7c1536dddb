package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/enhance"
)

// DefaultAdapterTimeout bounds each adapter call independently so one
// slow source cannot stall the whole analysis.
const DefaultAdapterTimeout = 15 * time.Second

// fallbackConfidence is the score given to total-failure and free-text
// results.
const fallbackConfidence = 0.1

// Ensure Analyzer implements linkdrop.Analyzer at compile time.
var _ linkdrop.Analyzer = (*Analyzer)(nil)

// readerTypes are the content types whose pages carry long-form body
// content worth a reader-view extraction pass. Platform types (tweets,
// repos, videos) get their body from structured APIs instead.
var readerTypes = map[linkdrop.ContentType]bool{
	linkdrop.TypeArticle:  true,
	linkdrop.TypeBookmark: true,
	linkdrop.TypeImage:    true,
}

// Analyzer is the capture pipeline: classify, fetch from sources in
// fixed order, merge on presence, enhance per type, score. Analyze is
// total; nothing inside it can fail an analysis.
type Analyzer struct {
	// Generic fetches page-level metadata (title tag, meta description,
	// Open Graph). Runs first for every URL.
	Generic linkdrop.SourceAdapter

	// Reader extracts long-form body content. Runs last, only for
	// content-focused types.
	Reader linkdrop.SourceAdapter

	// Platforms maps content types to their structured-API adapters.
	Platforms map[linkdrop.ContentType]linkdrop.SourceAdapter

	// Gate guards limited-quota platform adapters. GateKeys names the
	// quota resource for each gated content type; types without an entry
	// are never gated.
	Gate     linkdrop.QuotaGate
	GateKeys map[linkdrop.ContentType]string

	// Enhancers applies per-type post-processing. Required.
	Enhancers *enhance.Registry

	// AdapterTimeout bounds each adapter call. Zero means
	// DefaultAdapterTimeout.
	AdapterTimeout time.Duration

	// Logger receives adapter failures and skip decisions. nil means
	// slog.Default().
	Logger *slog.Logger
}

// Analyze classifies the input, gathers and merges source metadata, and
// applies per-type enhancement. Free text becomes a note; any internal
// panic degrades to a minimal bookmark record.
func (a *Analyzer) Analyze(ctx context.Context, input string) (result *linkdrop.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			a.log().Error("analysis panicked", "input", input, "panic", r)
			result = a.fallback(input)
		}
	}()

	if !linkdrop.IsURLLike(input) {
		return &linkdrop.AnalysisResult{
			ContentType: linkdrop.TypeNote,
			Metadata:    &linkdrop.Metadata{Title: linkdrop.Ptr(input)},
			Confidence:  fallbackConfidence,
		}
	}

	url := linkdrop.NormalizeURL(input)
	ct, _ := linkdrop.Classify(url)

	merged := &linkdrop.Metadata{Domain: linkdrop.ExtractDomain(url)}
	authoritative := false
	readerContent := ""

	if res := a.call(ctx, a.Generic, url); res != nil {
		merged = linkdrop.Merge(merged, res.Metadata)
	}

	if platform, ok := a.Platforms[ct]; ok {
		if a.allowed(ctx, ct) {
			if res := a.call(ctx, platform, url); res != nil {
				merged = linkdrop.Merge(merged, res.Metadata)
				authoritative = authoritative || res.Authoritative
			}
		}
	}

	if readerTypes[ct] {
		if res := a.call(ctx, a.Reader, url); res != nil {
			if ct == linkdrop.TypeImage {
				// Image pages keep the extracted body out of the record;
				// the enhancer only consults it for alt text.
				readerContent = linkdrop.GetString(res.Metadata.Content)
			} else {
				merged = linkdrop.Merge(merged, res.Metadata)
				readerContent = linkdrop.GetString(merged.Content)
			}
		}
	}

	ct, merged = a.Enhancers.Apply(enhance.Input{
		URL:           url,
		Type:          ct,
		Metadata:      merged,
		Authoritative: authoritative,
		ReaderContent: readerContent,
	})
	ct = enhance.RefineFromOG(ct, merged)

	return &linkdrop.AnalysisResult{
		ContentType: ct,
		Metadata:    merged,
		Confidence:  linkdrop.Confidence(ct, merged),
	}
}

// call runs one adapter with a per-call timeout. Errors are logged and
// degraded to "no data".
func (a *Analyzer) call(ctx context.Context, adapter linkdrop.SourceAdapter, url string) *linkdrop.SourceResult {
	if adapter == nil || !adapter.Available() {
		return nil
	}

	timeout := a.AdapterTimeout
	if timeout <= 0 {
		timeout = DefaultAdapterTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := adapter.Fetch(cctx, url)
	if err != nil {
		a.log().Warn("source adapter failed", "adapter", adapter.Name(), "url", url, "error", err)
		return nil
	}
	if res == nil || res.Metadata == nil {
		return nil
	}
	return res
}

// allowed consults the quota gate for gated content types.
func (a *Analyzer) allowed(ctx context.Context, ct linkdrop.ContentType) bool {
	if a.Gate == nil {
		return true
	}
	resource, ok := a.GateKeys[ct]
	if !ok {
		return true
	}
	if a.Gate.ShouldSkip(ctx, resource) {
		a.log().Info("platform adapter skipped by quota gate", "resource", resource)
		return false
	}
	return true
}

// fallback is the total-failure result: the raw input survives as the
// title so the capture is never lost.
func (a *Analyzer) fallback(input string) *linkdrop.AnalysisResult {
	md := &linkdrop.Metadata{Title: linkdrop.Ptr(input)}
	if linkdrop.IsURLLike(input) {
		md.Domain = linkdrop.ExtractDomain(linkdrop.NormalizeURL(input))
	}
	return &linkdrop.AnalysisResult{
		ContentType: linkdrop.TypeBookmark,
		Metadata:    md,
		Confidence:  fallbackConfidence,
	}
}

func (a *Analyzer) log() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
