// Package bloom provides probabilistic URL deduplication for batch
// capture runs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs already submitted in a batch. False positives are
// possible (a duplicate may be reported for a new URL); false negatives
// are not, so a URL is never analyzed twice.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether the URL was already recorded, recording it as a
// side effect. The first call for a URL returns false, later calls true.
func (f *Filter) Seen(url string) bool {
	return f.f.TestOrAddString(url)
}

// Test reports whether the URL might have been recorded, without
// recording it.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of recorded URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
