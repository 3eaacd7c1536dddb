package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/bloom"
)

// DefaultConcurrency is the batch worker count when none is configured.
const DefaultConcurrency = 4

// batchDedupeFP is the bloom filter false positive rate for batch
// deduplication.
const batchDedupeFP = 0.001

// AnalyzeAll runs the analyzer over a batch of inputs, deduplicating on
// normalized URL and analyzing at most concurrency inputs at a time.
// Results come back in input order with duplicates dropped. Analyze is
// total, so the only way the batch stops early is context cancellation;
// results completed before cancellation are still returned.
func AnalyzeAll(ctx context.Context, analyzer linkdrop.Analyzer, inputs []string, concurrency int) []*linkdrop.AnalysisResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	n := uint(len(inputs))
	if n < 64 {
		n = 64
	}
	seen := bloom.NewFilter(n, batchDedupeFP)

	results := make([]*linkdrop.AnalysisResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, input := range inputs {
		key := input
		if linkdrop.IsURLLike(input) {
			key = linkdrop.NormalizeURL(input)
		}
		if seen.Seen(key) {
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = analyzer.Analyze(gctx, input)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*linkdrop.AnalysisResult, 0, len(inputs))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
