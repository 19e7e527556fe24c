package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/inbox-admin/internal/binder"
	"github.com/MKhiriev/inbox-admin/internal/cache"
	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/workers"
)

type App struct {
	registry *cache.Registry
	binders  []*binder.Binder
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(registry *cache.Registry, binders []*binder.Binder, ui UI, cfg config.Workers, log *logger.Logger) (*App, error) {
	if registry == nil || ui == nil {
		return nil, fmt.Errorf("%w: registry and ui are required", ErrInvalidApp)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		registry: registry,
		binders:  binders,
		ui:       ui,
		workers:  workers.New(workers.NewRefreshWorker(registry, cfg.RefreshInterval, log)),
		logger:   log,
	}, nil
}

// Run starts the background workers and blocks in the UI until the user
// quits or the process receives a termination signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	if a.workers.Len() > 0 {
		a.workers.Start(ctx)
		defer func() {
			if err := a.workers.Stop(); err != nil {
				a.logger.Err(err).Msg("workers stopped with error")
			}
		}()
	}

	a.logger.Info().Strs("kinds", kindNames(a.registry)).Msg("admin panel started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("admin panel stopped")
	return nil
}

func (a *App) close() {
	for _, b := range a.binders {
		b.Close()
	}
}

func kindNames(r *cache.Registry) []string {
	kinds := r.Kinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, kind.String())
	}
	return names
}
