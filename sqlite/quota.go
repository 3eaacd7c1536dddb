package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/linkdrop"
)

// Compile-time interface verification.
var _ linkdrop.QuotaStore = (*QuotaStore)(nil)

// QuotaStore implements linkdrop.QuotaStore using SQLite. One row per
// resource key; SaveState replaces the whole row (last writer wins).
type QuotaStore struct {
	db *DB
}

// NewQuotaStore creates a new QuotaStore.
func NewQuotaStore(db *DB) *QuotaStore {
	return &QuotaStore{db: db}
}

// LoadState retrieves the persisted state for a resource, or (nil, nil)
// when none has been saved yet.
func (s *QuotaStore) LoadState(ctx context.Context, resource string) (*linkdrop.RateLimitState, error) {
	var remaining sql.NullInt64
	var resetTime, lastChecked sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT remaining_requests, reset_time, last_checked
		FROM rate_limits
		WHERE resource = ?
	`, resource).Scan(&remaining, &resetTime, &lastChecked)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &linkdrop.RateLimitState{}
	if remaining.Valid {
		state.RemainingRequests = linkdrop.Ptr(int(remaining.Int64))
	}
	if resetTime.Valid {
		t, err := parseRFC3339(resetTime.String, "reset_time")
		if err != nil {
			return nil, err
		}
		state.ResetTime = &t
	}
	if lastChecked.Valid {
		t, err := parseRFC3339(lastChecked.String, "last_checked")
		if err != nil {
			return nil, err
		}
		state.LastChecked = &t
	}

	return state, nil
}

// SaveState durably replaces the state for a resource.
func (s *QuotaStore) SaveState(ctx context.Context, resource string, state *linkdrop.RateLimitState) error {
	if state == nil {
		return linkdrop.Errorf(linkdrop.EINVALID, "state is required")
	}

	var remaining sql.NullInt64
	if state.RemainingRequests != nil {
		remaining = sql.NullInt64{Int64: int64(*state.RemainingRequests), Valid: true}
	}
	var resetTime sql.NullString
	if state.ResetTime != nil {
		resetTime = sql.NullString{String: state.ResetTime.UTC().Format(time.RFC3339), Valid: true}
	}
	var lastChecked sql.NullString
	if state.LastChecked != nil {
		lastChecked = sql.NullString{String: state.LastChecked.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rate_limits (resource, remaining_requests, reset_time, last_checked, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(resource) DO UPDATE SET
			remaining_requests = excluded.remaining_requests,
			reset_time = excluded.reset_time,
			last_checked = excluded.last_checked,
			updated_at = excluded.updated_at
	`, resource, remaining, resetTime, lastChecked, time.Now().UTC().Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("failed to save rate limit state: %w", err)
	}
	return nil
}
