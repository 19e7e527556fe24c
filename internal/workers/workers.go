package workers

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan error
}

// New groups workers. Nil workers are skipped.
func New(workers ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Len returns the number of workers in the group.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run runs every worker concurrently and blocks until all of them returned.
// The first error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}

// Start launches Run in the background. Any previously started run is
// stopped first.
func (w *Workers) Start(ctx context.Context) {
	_ = w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	go func() {
		done <- w.Run(runCtx)
	}()
}

// Stop cancels a run started with Start and waits for it to finish. Safe to
// call when nothing is running.
func (w *Workers) Stop() error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	return <-done
}
