package handler

import (
	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/handler/http"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/metrics"
	"github.com/MKhiriev/inbox-admin/internal/service"
	"github.com/MKhiriev/inbox-admin/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, statuses []http.StatusSource, m *metrics.Metrics, cfg config.Gateway, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}
	if len(services.APIs()) == 0 {
		return nil, errNoServicesConfigured
	}

	return &Handlers{
		HTTP: http.NewHandler(services, statuses, m, cfg, buildInfo, logger),
	}, nil
}
