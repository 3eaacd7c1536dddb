// Package mock provides function-field mock implementations of the
// linkdrop interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/linkdrop"
)

var _ linkdrop.SourceAdapter = (*SourceAdapter)(nil)

// SourceAdapter is a mock implementation of linkdrop.SourceAdapter.
type SourceAdapter struct {
	NameFn      func() string
	AvailableFn func() bool
	FetchFn     func(ctx context.Context, url string) (*linkdrop.SourceResult, error)
}

func (a *SourceAdapter) Name() string {
	if a.NameFn == nil {
		return "mock"
	}
	return a.NameFn()
}

func (a *SourceAdapter) Available() bool {
	if a.AvailableFn == nil {
		return true
	}
	return a.AvailableFn()
}

func (a *SourceAdapter) Fetch(ctx context.Context, url string) (*linkdrop.SourceResult, error) {
	return a.FetchFn(ctx, url)
}
