package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/inbox-admin/internal/logger"
)

// RefreshWorker lists every cache on a fixed interval.
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	logger    *logger.Logger
}

// NewRefreshWorker returns a worker refreshing r every interval, or nil when
// interval is not positive. [New] skips nil workers.
func NewRefreshWorker(r Refresher, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		return nil
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RefreshWorker{refresher: r, interval: interval, logger: log.WithComponent("refresh_worker")}
}

// Run implements [Worker]. Refresh errors are logged and never stop the loop.
func (w *RefreshWorker) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	w.logger.Debug().Dur("interval", w.interval).Msg("refresh worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("refresh worker stopped")
			return nil
		case <-t.C:
			if err := w.refresher.RefreshAll(ctx); err != nil && ctx.Err() == nil {
				w.logger.Warn().Err(err).Msg("background refresh failed")
			}
		}
	}
}
