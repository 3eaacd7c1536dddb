package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkdrop"
)

// Ensure LoggingQuotaGate implements linkdrop.QuotaGate.
var _ linkdrop.QuotaGate = (*LoggingQuotaGate)(nil)

// LoggingQuotaGate wraps a QuotaGate with debug logging of gate
// decisions and state updates.
type LoggingQuotaGate struct {
	next   linkdrop.QuotaGate
	logger *slog.Logger
}

// NewLoggingQuotaGate creates a new LoggingQuotaGate.
func NewLoggingQuotaGate(next linkdrop.QuotaGate, logger *slog.Logger) *LoggingQuotaGate {
	return &LoggingQuotaGate{next: next, logger: logger}
}

// ShouldSkip delegates to the wrapped gate and logs the decision.
func (g *LoggingQuotaGate) ShouldSkip(ctx context.Context, resource string) bool {
	skip := g.next.ShouldSkip(ctx, resource)
	g.logger.Debug("quota gate check", "resource", resource, "skip", skip)
	return skip
}

// UpdateFromResponse delegates to the wrapped gate and logs the update.
func (g *LoggingQuotaGate) UpdateFromResponse(ctx context.Context, resource string, remaining *int, resetUnix *int64) (err error) {
	defer func() {
		attrs := []any{"resource", resource, "err", err}
		if remaining != nil {
			attrs = append(attrs, "remaining", *remaining)
		}
		if resetUnix != nil {
			attrs = append(attrs, "reset", time.Unix(*resetUnix, 0))
		}
		g.logger.Debug("quota update", attrs...)
	}()
	return g.next.UpdateFromResponse(ctx, resource, remaining, resetUnix)
}

// MarkRateLimited delegates to the wrapped gate and logs the event.
func (g *LoggingQuotaGate) MarkRateLimited(ctx context.Context, resource string, resetAt *time.Time) (err error) {
	defer func() {
		g.logger.Warn("rate limited", "resource", resource, "err", err)
	}()
	return g.next.MarkRateLimited(ctx, resource, resetAt)
}

// Status delegates to the wrapped gate.
func (g *LoggingQuotaGate) Status(ctx context.Context, resource string) *linkdrop.RateLimitStatus {
	return g.next.Status(ctx, resource)
}
