// Package expiry removes feed posts that have outlived their TTL. The
// original design used a store-level TTL; here a periodic sweep keeps the
// behavior while the database stays an ordinary table.
package expiry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/tsiw/alumnet/internal/pkg/logger"
)

// Store is the slice of the post repository the sweeper needs.
type Store interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper periodically deletes expired posts.
type Sweeper struct {
	store    Store
	interval time.Duration
}

// NewSweeper creates a sweeper with the given sweep interval.
func NewSweeper(store Store, interval time.Duration) *Sweeper {
	return &Sweeper{store: store, interval: interval}
}

// Run sweeps immediately and then on every tick until the context is
// cancelled. It blocks; run it in its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	logger.Info().Dur("interval", s.interval).Msg("Post expiry sweeper started")

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Post expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep deletes expired posts, retrying transient database failures with
// exponential backoff.
func (s *Sweeper) sweep(ctx context.Context) {
	var deleted int64

	operation := func() error {
		n, err := s.store.DeleteExpired(ctx, time.Now())
		if err != nil {
			return err
		}
		deleted = n
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		logger.Error().Err(err).Msg("Expiry sweep failed")
		return
	}

	if deleted > 0 {
		logger.Info().Int64("deleted", deleted).Msg("Expired posts removed")
	}
}
