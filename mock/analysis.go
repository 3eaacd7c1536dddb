package mock

import (
	"context"

	"github.com/fwojciec/linkdrop"
)

var _ linkdrop.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of linkdrop.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, input string) *linkdrop.AnalysisResult
}

func (a *Analyzer) Analyze(ctx context.Context, input string) *linkdrop.AnalysisResult {
	return a.AnalyzeFn(ctx, input)
}

var _ linkdrop.AnalysisCache = (*AnalysisCache)(nil)

// AnalysisCache is a mock implementation of linkdrop.AnalysisCache.
type AnalysisCache struct {
	GetFn   func(ctx context.Context, url string) (*linkdrop.AnalysisResult, error)
	PutFn   func(ctx context.Context, url string, result *linkdrop.AnalysisResult) error
	ClearFn func(ctx context.Context) error
}

func (c *AnalysisCache) Get(ctx context.Context, url string) (*linkdrop.AnalysisResult, error) {
	return c.GetFn(ctx, url)
}

func (c *AnalysisCache) Put(ctx context.Context, url string, result *linkdrop.AnalysisResult) error {
	if c.PutFn == nil {
		return nil
	}
	return c.PutFn(ctx, url, result)
}

func (c *AnalysisCache) Clear(ctx context.Context) error {
	if c.ClearFn == nil {
		return nil
	}
	return c.ClearFn(ctx)
}

var _ linkdrop.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of linkdrop.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, title, content string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, title, content string) (string, error) {
	return s.SummarizeFn(ctx, title, content)
}
