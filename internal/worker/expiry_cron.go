package worker

// expiry_cron.go
// Background goroutine that periodically marks sent quotes whose
// valid_until date has passed as expired.

import (
	"context"
	"time"

	"quotecraft/internal/repository"

	"github.com/rs/zerolog/log"
)

const expiryTickInterval = time.Minute

// StartExpiryCron launches a background goroutine that ticks every minute
// and expires overdue quotes. It respects the context for graceful shutdown.
func StartExpiryCron(ctx context.Context, quoteRepo repository.QuoteRepository) {
	go func() {
		ticker := time.NewTicker(expiryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("expiry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("expiry_cron: shutting down")
				return
			case <-ticker.C:
				n, err := quoteRepo.MarkExpired(ctx, time.Now())
				if err != nil {
					log.Error().Err(err).Msg("expiry_cron: failed to expire quotes")
					continue
				}
				if n > 0 {
					log.Info().Int64("count", n).Msg("expiry_cron: quotes expired")
				}
			}
		}
	}()
}
