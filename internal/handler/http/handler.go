package http

import (
	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/metrics"
	"github.com/MKhiriev/inbox-admin/internal/service"
	"github.com/MKhiriev/inbox-admin/models"
)

// StatusSource exposes the connection state of one upstream service.
// [monitor.Monitor] satisfies it.
type StatusSource interface {
	Service() string
	State() models.ConnectionState
}

type Handler struct {
	services *service.Services
	statuses []StatusSource
	metrics  *metrics.Metrics

	buildInfo    models.AppBuildInfo
	callerHeader string

	logger *logger.Logger
}

func NewHandler(services *service.Services, statuses []StatusSource, m *metrics.Metrics, cfg config.Gateway, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	callerHeader := cfg.CallerTokenHeader
	if callerHeader == "" {
		callerHeader = DefaultCallerTokenHeader
	}

	logger.Info().Str("caller_token_header", callerHeader).Msg("http handler created")
	return &Handler{
		services:     services,
		statuses:     statuses,
		metrics:      m,
		buildInfo:    buildInfo,
		callerHeader: callerHeader,
		logger:       logger,
	}
}
