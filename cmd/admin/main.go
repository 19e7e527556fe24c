package main

import (
	"fmt"

	"github.com/MKhiriev/inbox-admin/internal/binder"
	"github.com/MKhiriev/inbox-admin/internal/cache"
	"github.com/MKhiriev/inbox-admin/internal/client"
	"github.com/MKhiriev/inbox-admin/internal/config"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/metrics"
	"github.com/MKhiriev/inbox-admin/internal/tui"
	"github.com/MKhiriev/inbox-admin/internal/upstream"
	"github.com/MKhiriev/inbox-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetAdminConfig()
	if err != nil {
		logger.NewLogger("inbox-admin").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("inbox-admin", cfg.App.LogFile)
	m := metrics.New()

	upstreams, err := upstream.New(cfg.Chatwoot, cfg.Evolution, cfg.App.AccessToken, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create upstreams")
	}
	defer upstreams.Close()

	apis := upstreams.Services().APIs()
	caches := make([]*cache.Cache, 0, len(apis))
	binders := make([]*binder.Binder, 0, len(apis))
	for _, api := range apis {
		c := cache.New(api, cfg.Cache, m, log)
		caches = append(caches, c)

		var conn binder.Connection
		if mon, ok := upstreams.MonitorFor(api.Kind()); ok {
			conn = mon
		}
		binders = append(binders, binder.New(c, conn))
	}

	ui, err := tui.New(binders, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(cache.NewRegistry(caches...), binders, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init admin app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("admin run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
