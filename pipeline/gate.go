// Package pipeline composes classifiers, source adapters, the quota
// gate and the enhancer registry into the public analysis entry point.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/fwojciec/linkdrop"
)

// DefaultStaleness is how long a loaded quota state is trusted before it
// is re-read from the store. State can change under us when another
// process shares the store.
const DefaultStaleness = 60 * time.Second

// DefaultRateLimitBackoff is the assumed window length when an upstream
// signals a rate limit without a reset time.
const DefaultRateLimitBackoff = 15 * time.Minute

// Ensure Gate implements linkdrop.QuotaGate at compile time.
var _ linkdrop.QuotaGate = (*Gate)(nil)

// Gate is the persisted quota tracker for limited-quota sources. Every
// mutation is written through to the store before the method returns, so
// decisions later in the same call chain see the updated state. Racing
// writers resolve last-writer-wins; the upstream's own headers
// re-establish truth on the next successful call.
type Gate struct {
	store     linkdrop.QuotaStore
	staleness time.Duration
	quotas    map[string]int
	logger    *slog.Logger
	now       func() time.Time

	mu     sync.Mutex
	cache  map[string]*linkdrop.RateLimitState
	loaded map[string]time.Time
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithDefaultQuota sets the request budget restored for a resource when
// its rate-limit window rolls over. Resources without a configured quota
// default to 1.
func WithDefaultQuota(resource string, quota int) GateOption {
	return func(g *Gate) {
		g.quotas[resource] = quota
	}
}

// WithStaleness overrides the reload window.
func WithStaleness(d time.Duration) GateOption {
	return func(g *Gate) {
		g.staleness = d
	}
}

// WithGateLogger sets the logger.
func WithGateLogger(logger *slog.Logger) GateOption {
	return func(g *Gate) {
		g.logger = logger
	}
}

// WithNow overrides the clock. Used in tests.
func WithNow(now func() time.Time) GateOption {
	return func(g *Gate) {
		g.now = now
	}
}

// NewGate creates a Gate over the given store.
func NewGate(store linkdrop.QuotaStore, opts ...GateOption) *Gate {
	g := &Gate{
		store:     store,
		staleness: DefaultStaleness,
		quotas:    map[string]int{},
		logger:    slog.Default(),
		now:       time.Now,
		cache:     map[string]*linkdrop.RateLimitState{},
		loaded:    map[string]time.Time{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ShouldSkip reports whether a call to the resource must be skipped.
// Unknown state is allowed optimistically. An elapsed reset time rolls
// the window over: the default quota is restored, persisted, and the
// call allowed.
func (g *Gate) ShouldSkip(ctx context.Context, resource string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := g.loadLocked(ctx, resource)
	if state == nil {
		return false
	}
	if state.RemainingRequests != nil && *state.RemainingRequests > 0 {
		return false
	}
	if state.ResetTime == nil {
		return false
	}
	if g.now().After(*state.ResetTime) {
		quota := g.quotaFor(resource)
		state.RemainingRequests = &quota
		state.ResetTime = nil
		state.LastChecked = linkdrop.Ptr(g.now())
		g.persistLocked(ctx, resource, state)
		return false
	}
	return true
}

// UpdateFromResponse records quota headers from a successful call.
func (g *Gate) UpdateFromResponse(ctx context.Context, resource string, remaining *int, resetUnix *int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := g.loadLocked(ctx, resource)
	if state == nil {
		state = &linkdrop.RateLimitState{}
	}
	if remaining != nil {
		state.RemainingRequests = remaining
	}
	if resetUnix != nil {
		state.ResetTime = linkdrop.Ptr(time.Unix(*resetUnix, 0))
	}
	state.LastChecked = linkdrop.Ptr(g.now())

	return g.persistLocked(ctx, resource, state)
}

// MarkRateLimited records an explicit rate-limit signal.
func (g *Gate) MarkRateLimited(ctx context.Context, resource string, resetAt *time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := g.loadLocked(ctx, resource)
	if state == nil {
		state = &linkdrop.RateLimitState{}
	}
	state.RemainingRequests = linkdrop.Ptr(0)
	if resetAt != nil {
		state.ResetTime = resetAt
	} else {
		state.ResetTime = linkdrop.Ptr(g.now().Add(DefaultRateLimitBackoff))
	}
	state.LastChecked = linkdrop.Ptr(g.now())

	return g.persistLocked(ctx, resource, state)
}

// Status returns a read-only snapshot for observability.
func (g *Gate) Status(ctx context.Context, resource string) *linkdrop.RateLimitStatus {
	g.mu.Lock()
	defer g.mu.Unlock()

	status := &linkdrop.RateLimitStatus{Resource: resource}

	state := g.loadLocked(ctx, resource)
	if state == nil {
		status.Summary = "no recorded state"
		return status
	}

	status.RemainingRequests = state.RemainingRequests
	status.ResetTime = state.ResetTime

	now := g.now()
	exhausted := state.RemainingRequests != nil && *state.RemainingRequests <= 0
	if exhausted && state.ResetTime != nil && now.Before(*state.ResetTime) {
		status.IsRateLimited = true
		status.MinutesUntilReset = int(math.Ceil(state.ResetTime.Sub(now).Minutes()))
		status.Summary = fmt.Sprintf("rate limited; resets in %dm", status.MinutesUntilReset)
		return status
	}

	if state.RemainingRequests != nil {
		status.Summary = fmt.Sprintf("available; %d requests remaining", *state.RemainingRequests)
	} else {
		status.Summary = "available"
	}
	return status
}

// loadLocked returns the cached state, reloading from the store when the
// cached copy is older than the staleness window. A store read failure
// degrades to "no state" (optimistic) rather than blocking analyses.
func (g *Gate) loadLocked(ctx context.Context, resource string) *linkdrop.RateLimitState {
	if at, ok := g.loaded[resource]; ok && g.now().Sub(at) <= g.staleness {
		return g.cache[resource]
	}

	state, err := g.store.LoadState(ctx, resource)
	if err != nil {
		g.logger.Warn("quota state load failed", "resource", resource, "error", err)
		return g.cache[resource]
	}
	g.cache[resource] = state
	g.loaded[resource] = g.now()
	return state
}

func (g *Gate) persistLocked(ctx context.Context, resource string, state *linkdrop.RateLimitState) error {
	g.cache[resource] = state
	g.loaded[resource] = g.now()
	if err := g.store.SaveState(ctx, resource, state); err != nil {
		g.logger.Warn("quota state save failed", "resource", resource, "error", err)
		return err
	}
	return nil
}

func (g *Gate) quotaFor(resource string) int {
	if quota, ok := g.quotas[resource]; ok {
		return quota
	}
	return 1
}
