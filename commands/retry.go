package commands

import (
	"context"
	"log/slog"

	"github.com/cenkalti/backoff/v4"

	"github.com/ccfrost/albumup/albumupconfig"
	"github.com/ccfrost/albumup/commands/googlephotos"
)

// retryRateLimited runs op, retrying it under exponential backoff with
// jitter for as long as it keeps failing with HTTP 429. Any other error
// stops the retries immediately. The retry budget is bounded by
// cfg.MaxElapsed, not by an attempt count.
func retryRateLimited(ctx context.Context, cfg albumupconfig.BackoffConfig, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.MaxElapsedTime = cfg.MaxElapsed

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if googlephotos.IsRateLimited(err) {
			logger.Warn("Rate limited by API, backing off",
				slog.String("error", err.Error()))
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(bo, ctx))
}
