package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-forum/internal/logger"
)

// ExpiredCodeDeleter deletes verification codes past expiry.
type ExpiredCodeDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Sweeper periodically deletes expired verification codes. Best-effort
// cleanup only: the confirmation path checks expiry itself.
type Sweeper struct {
	codes ExpiredCodeDeleter
}

// NewSweeper creates a new Sweeper.
func NewSweeper(codes ExpiredCodeDeleter) *Sweeper {
	return &Sweeper{codes: codes}
}

// Run sweeps at the given interval until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("code sweeper stopped")
			return
		case <-ticker.C:
			deleted, err := s.codes.DeleteExpired(ctx)
			if err != nil {
				logger.Log.Errorw("failed to sweep expired codes", "err", err)
				continue
			}
			if deleted > 0 {
				logger.Log.Infow("expired codes swept", "deleted", deleted)
			}
		}
	}
}
