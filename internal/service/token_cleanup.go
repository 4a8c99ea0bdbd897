package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type TokenClearer interface {
	ClearExpiredTokens(ctx context.Context, cutoff time.Time) (int64, error)
}

// TokenCleanup periodically clears password reset tokens older than ttl until
// ctx is done
func TokenCleanup(ctx context.Context, every, ttl time.Duration, users TokenClearer) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	zap.L().Debug("Token cleanup attached", zap.Duration("tick_every", every), zap.Duration("ttl", ttl))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := users.ClearExpiredTokens(ctx, time.Now().Add(-ttl))
			if err != nil {
				zap.L().Error("Failed to clear expired reset tokens", zap.Error(err))
				continue
			}

			if n > 0 {
				zap.L().Debug("Cleared expired reset tokens", zap.Int64("count", n))
			}
		}
	}
}
