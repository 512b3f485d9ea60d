// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"log/slog"
	"time"

	"github.com/life-manager/backend/internal/integration/persistence"
)

// DefaultSweepInterval is how often expired refresh tokens are purged.
const DefaultSweepInterval = time.Hour

// TokenSweeper periodically deletes expired refresh tokens.
type TokenSweeper struct {
	tokens   persistence.TokenRepository
	interval time.Duration
	now      func() time.Time
}

// NewTokenSweeper creates a sweeper. A non-positive interval uses DefaultSweepInterval.
func NewTokenSweeper(tokens persistence.TokenRepository, interval time.Duration) *TokenSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &TokenSweeper{
		tokens:   tokens,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start sweeps immediately and then on every tick. It blocks until ctx is cancelled.
func (s *TokenSweeper) Start(ctx context.Context) {
	slog.Info("Token sweeper started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Sweep immediately on startup
	s.SweepNow(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Token sweeper shutting down")
			return
		case <-ticker.C:
			s.SweepNow(ctx)
		}
	}
}

// SweepNow deletes every refresh token that has already expired.
func (s *TokenSweeper) SweepNow(ctx context.Context) int64 {
	deleted, err := s.tokens.DeleteExpired(ctx, s.now())
	if err != nil {
		slog.Error("Failed to delete expired refresh tokens", "error", err)
		return 0
	}
	if deleted > 0 {
		slog.Debug("Deleted expired refresh tokens", "count", deleted)
	}
	return deleted
}
