package store

import (
	"context"
	"errors"
	"time"

	"github.com/apetrenko/contentgen/internal/logging"
)

// StartPoller refreshes a resource on a fixed interval until ctx is
// cancelled. Ticks that land while a load is still running are skipped, never
// queued. Fetch errors are logged and polling continues.
func StartPoller(ctx context.Context, interval time.Duration, load func(context.Context) error, logger logging.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				err := load(ctx)
				switch {
				case err == nil:
				case errors.Is(err, ErrLoadInFlight):
					logger.Debug(ctx, "poll tick skipped, load in flight")
				case errors.Is(err, context.Canceled):
					return
				default:
					logger.Debug(ctx, "poll refresh failed", "error", err)
				}
			}
		}
	}()
}
