package linkdrop

import (
	"context"
	"time"
)

// RateLimitState is the persisted quota snapshot for one gated resource.
// All fields are optional: a freshly created state knows nothing and the
// gate treats that optimistically.
type RateLimitState struct {
	RemainingRequests *int       `json:"remainingRequests,omitempty"`
	ResetTime         *time.Time `json:"resetTime,omitempty"`
	LastChecked       *time.Time `json:"lastChecked,omitempty"`
}

// RateLimitStatus is a read-only snapshot of a gated resource for
// observability.
type RateLimitStatus struct {
	Resource          string     `json:"resource"`
	IsRateLimited     bool       `json:"isRateLimited"`
	RemainingRequests *int       `json:"remainingRequests,omitempty"`
	ResetTime         *time.Time `json:"resetTime,omitempty"`
	MinutesUntilReset int        `json:"minutesUntilReset"`
	Summary           string     `json:"summary"`
}

// QuotaStore persists rate-limit state across process restarts, one
// record per resource key.
type QuotaStore interface {
	// LoadState returns the persisted state for a resource, or (nil, nil)
	// when none has been saved yet.
	LoadState(ctx context.Context, resource string) (*RateLimitState, error)

	// SaveState durably replaces the state for a resource.
	SaveState(ctx context.Context, resource string, state *RateLimitState) error
}

// QuotaGate guards a limited-quota upstream source. State survives
// process restarts via a QuotaStore; concurrent callers may race on
// updates, which is acceptable because the upstream's own response
// headers re-establish truth on every successful call.
type QuotaGate interface {
	// ShouldSkip reports whether a call to the resource must be skipped.
	// Unknown state is optimistic (allowed); an elapsed reset time rolls
	// the window over, restoring the resource's default quota.
	ShouldSkip(ctx context.Context, resource string) bool

	// UpdateFromResponse records quota headers from a successful call.
	// nil arguments leave the corresponding field untouched.
	UpdateFromResponse(ctx context.Context, resource string, remaining *int, resetUnix *int64) error

	// MarkRateLimited records an explicit rate-limit signal (HTTP 429).
	// When resetAt is nil the reset defaults to 15 minutes from now.
	MarkRateLimited(ctx context.Context, resource string, resetAt *time.Time) error

	// Status returns a read-only snapshot for the resource.
	Status(ctx context.Context, resource string) *RateLimitStatus
}
