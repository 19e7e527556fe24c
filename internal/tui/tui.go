package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/inbox-admin/internal/binder"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	binders   []*binder.Binder
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(binders []*binder.Binder, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if len(binders) == 0 {
		return nil, ErrNoBinders
	}
	return &TUI{binders: binders, buildInfo: buildInfo, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	// binder listeners run inside Update, so they must never block
	changes := make(chan struct{}, 1)
	notify := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}
	for _, b := range t.binders {
		unsubscribe := b.Subscribe(notify)
		defer unsubscribe()
	}

	model := newAdminModel(ctx, t.binders, changes, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("admin panel stopped by context")
		return nil
	}
	if err != nil {
		t.logger.Err(err).Msg("admin panel failed")
		return err
	}
	return nil
}
