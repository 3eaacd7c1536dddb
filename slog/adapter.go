// Package slog provides logging decorators for linkdrop services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkdrop"
)

// Ensure LoggingSourceAdapter implements linkdrop.SourceAdapter.
var _ linkdrop.SourceAdapter = (*LoggingSourceAdapter)(nil)

// LoggingSourceAdapter wraps a SourceAdapter with per-fetch logging.
type LoggingSourceAdapter struct {
	next   linkdrop.SourceAdapter
	logger *slog.Logger
}

// NewLoggingSourceAdapter creates a new LoggingSourceAdapter.
func NewLoggingSourceAdapter(next linkdrop.SourceAdapter, logger *slog.Logger) *LoggingSourceAdapter {
	return &LoggingSourceAdapter{next: next, logger: logger}
}

// Name delegates to the wrapped adapter.
func (a *LoggingSourceAdapter) Name() string {
	return a.next.Name()
}

// Available delegates to the wrapped adapter.
func (a *LoggingSourceAdapter) Available() bool {
	return a.next.Available()
}

// Fetch delegates to the wrapped adapter and logs the operation.
func (a *LoggingSourceAdapter) Fetch(ctx context.Context, url string) (result *linkdrop.SourceResult, err error) {
	defer func(begin time.Time) {
		a.logger.Info("source fetch",
			"adapter", a.next.Name(),
			"url", url,
			"found", result != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Fetch(ctx, url)
}
