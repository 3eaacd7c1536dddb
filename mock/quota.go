package mock

import (
	"context"
	"time"

	"github.com/fwojciec/linkdrop"
)

var _ linkdrop.QuotaStore = (*QuotaStore)(nil)

// QuotaStore is a mock implementation of linkdrop.QuotaStore.
type QuotaStore struct {
	LoadStateFn func(ctx context.Context, resource string) (*linkdrop.RateLimitState, error)
	SaveStateFn func(ctx context.Context, resource string, state *linkdrop.RateLimitState) error
}

func (s *QuotaStore) LoadState(ctx context.Context, resource string) (*linkdrop.RateLimitState, error) {
	return s.LoadStateFn(ctx, resource)
}

func (s *QuotaStore) SaveState(ctx context.Context, resource string, state *linkdrop.RateLimitState) error {
	return s.SaveStateFn(ctx, resource, state)
}

var _ linkdrop.QuotaGate = (*QuotaGate)(nil)

// QuotaGate is a mock implementation of linkdrop.QuotaGate.
type QuotaGate struct {
	ShouldSkipFn         func(ctx context.Context, resource string) bool
	UpdateFromResponseFn func(ctx context.Context, resource string, remaining *int, resetUnix *int64) error
	MarkRateLimitedFn    func(ctx context.Context, resource string, resetAt *time.Time) error
	StatusFn             func(ctx context.Context, resource string) *linkdrop.RateLimitStatus
}

func (g *QuotaGate) ShouldSkip(ctx context.Context, resource string) bool {
	if g.ShouldSkipFn == nil {
		return false
	}
	return g.ShouldSkipFn(ctx, resource)
}

func (g *QuotaGate) UpdateFromResponse(ctx context.Context, resource string, remaining *int, resetUnix *int64) error {
	if g.UpdateFromResponseFn == nil {
		return nil
	}
	return g.UpdateFromResponseFn(ctx, resource, remaining, resetUnix)
}

func (g *QuotaGate) MarkRateLimited(ctx context.Context, resource string, resetAt *time.Time) error {
	if g.MarkRateLimitedFn == nil {
		return nil
	}
	return g.MarkRateLimitedFn(ctx, resource, resetAt)
}

func (g *QuotaGate) Status(ctx context.Context, resource string) *linkdrop.RateLimitStatus {
	if g.StatusFn == nil {
		return &linkdrop.RateLimitStatus{Resource: resource}
	}
	return g.StatusFn(ctx, resource)
}
