// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/openleaf/internal/adapter"
	"github.com/MKhiriev/openleaf/internal/client"
	"github.com/MKhiriev/openleaf/internal/config"
	"github.com/MKhiriev/openleaf/internal/handler"
	"github.com/MKhiriev/openleaf/internal/logger"
	"github.com/MKhiriev/openleaf/internal/server"
	"github.com/MKhiriev/openleaf/internal/service"
	"github.com/MKhiriev/openleaf/internal/store"
	"github.com/MKhiriev/openleaf/internal/validators"
	"github.com/MKhiriev/openleaf/internal/workers"
	"github.com/MKhiriev/openleaf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, closeLog := logger.NewClientLogger("openleaf-client", cfg.App.LogFile)
	defer closeLog()

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("closing local storage")
		}
	}()

	validator := validators.NewStructValidator()

	gateway, err := adapter.NewPlaidAdapter(cfg.Adapter, validator, log)
	if err != nil {
		return fmt.Errorf("create aggregator adapter: %w", err)
	}

	services := service.NewClientServices(storages.Repositories, storages.DB, gateway, validator, *cfg, log)

	appInfo, err := service.NewAppInfoService(cfg.App, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		return fmt.Errorf("create app info service: %w", err)
	}

	background := workers.NewWorkers(
		workers.NewSyncWorker(services.SyncService, cfg.Workers, log.GetChildLogger()),
	)

	app := client.NewApp(services, appInfo, background, cfg.App, log)
	defer app.Close()

	handlers, err := handler.NewHandlers(app, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
