package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-quest-client/internal/adapter"
	"github.com/MKhiriev/go-quest-client/internal/client"
	"github.com/MKhiriev/go-quest-client/internal/config"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/store"
	"github.com/MKhiriev/go-quest-client/internal/tui"
	"github.com/MKhiriev/go-quest-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("quest-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	notifications := tui.NewNotifications()
	ui := tui.New(buildInfo, notifications, log)

	app := client.NewApp(cfg, storages, serverAdapter, ui, notifications, log)
	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		stop()
		_ = storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
