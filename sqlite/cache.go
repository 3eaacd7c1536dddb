package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/linkdrop"
)

// DefaultCacheTTL is how long a cached analysis stays fresh. Page
// metadata drifts slowly; a week keeps repeat captures cheap without
// serving stale records for long.
const DefaultCacheTTL = 7 * 24 * time.Hour

// Compile-time interface verification.
var _ linkdrop.AnalysisCache = (*AnalysisCache)(nil)

// AnalysisCache implements linkdrop.AnalysisCache using SQLite. Entries
// are keyed by a 64-bit hash of the normalized URL and expire after a
// TTL; expired rows are dropped lazily on read.
type AnalysisCache struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

// CacheOption configures an AnalysisCache.
type CacheOption func(*AnalysisCache)

// WithTTL overrides the entry lifetime.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *AnalysisCache) {
		c.ttl = ttl
	}
}

// WithCacheNow overrides the clock. Used in tests.
func WithCacheNow(now func() time.Time) CacheOption {
	return func(c *AnalysisCache) {
		c.now = now
	}
}

// NewAnalysisCache creates a new AnalysisCache.
func NewAnalysisCache(db *DB, opts ...CacheOption) *AnalysisCache {
	c := &AnalysisCache{
		db:  db,
		ttl: DefaultCacheTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves the cached result for a URL.
// Returns ENOTFOUND on a miss or an expired entry.
func (c *AnalysisCache) Get(ctx context.Context, url string) (*linkdrop.AnalysisResult, error) {
	var contentType, metadataJSON, createdAt string
	var confidence float64

	err := c.db.QueryRowContext(ctx, `
		SELECT content_type, metadata, confidence, created_at
		FROM analysis_cache
		WHERE url_hash = ?
	`, hashURL(url)).Scan(&contentType, &metadataJSON, &confidence, &createdAt)

	if err == sql.ErrNoRows {
		return nil, linkdrop.Errorf(linkdrop.ENOTFOUND, "no cached analysis for url")
	}
	if err != nil {
		return nil, err
	}

	created, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	if c.now().Sub(created) > c.ttl {
		_, _ = c.db.ExecContext(ctx, `DELETE FROM analysis_cache WHERE url_hash = ?`, hashURL(url))
		return nil, linkdrop.Errorf(linkdrop.ENOTFOUND, "cached analysis expired")
	}

	var metadata linkdrop.Metadata
	if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
		return nil, fmt.Errorf("failed to decode cached metadata: %w", err)
	}

	return &linkdrop.AnalysisResult{
		ContentType: linkdrop.ContentType(contentType),
		Metadata:    &metadata,
		Confidence:  confidence,
	}, nil
}

// Put stores a result for a URL, replacing any previous entry.
func (c *AnalysisCache) Put(ctx context.Context, url string, result *linkdrop.AnalysisResult) error {
	if result == nil {
		return linkdrop.Errorf(linkdrop.EINVALID, "result is required")
	}

	metadata := result.Metadata
	if metadata == nil {
		metadata = &linkdrop.Metadata{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO analysis_cache (url_hash, id, url, content_type, metadata, confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url_hash) DO UPDATE SET
			id = excluded.id,
			url = excluded.url,
			content_type = excluded.content_type,
			metadata = excluded.metadata,
			confidence = excluded.confidence,
			created_at = excluded.created_at
	`, hashURL(url), uuid.New().String(), url, string(result.ContentType),
		string(metadataJSON), result.Confidence, c.now().UTC().Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("failed to cache analysis: %w", err)
	}
	return nil
}

// Clear removes all cached entries.
func (c *AnalysisCache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM analysis_cache`)
	return err
}

// hashURL returns the cache key for a URL.
func hashURL(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}
