package main

import (
	"fmt"

	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/handler"
	"github.com/MKhiriev/inbox-admin/internal/handler/http"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/metrics"
	"github.com/MKhiriev/inbox-admin/internal/server"
	"github.com/MKhiriev/inbox-admin/internal/upstream"
	"github.com/MKhiriev/inbox-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("inbox-gateway")
	cfg, err := config.GetGatewayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	version := buildVersion
	if cfg.App.Version != "" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	m := metrics.New()

	// the caller token of each request is used instead of a static one
	upstreams, err := upstream.New(cfg.Chatwoot, cfg.Evolution, "", m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create upstreams")
	}
	defer upstreams.Close()

	monitors := upstreams.Monitors()
	statuses := make([]http.StatusSource, 0, len(monitors))
	for _, mon := range monitors {
		statuses = append(statuses, mon)
	}

	handlers, err := handler.NewHandlers(upstreams.Services(), statuses, m, cfg.Gateway, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("gateway run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
