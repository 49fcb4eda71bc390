// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/storefront-auth/internal/config"
	"github.com/MKhiriev/storefront-auth/internal/events"
	"github.com/MKhiriev/storefront-auth/internal/handler"
	"github.com/MKhiriev/storefront-auth/internal/logger"
	"github.com/MKhiriev/storefront-auth/internal/server"
	"github.com/MKhiriev/storefront-auth/internal/service"
	"github.com/MKhiriev/storefront-auth/internal/session"
	"github.com/MKhiriev/storefront-auth/internal/store"
	"github.com/MKhiriev/storefront-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("storefront-auth", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("storefront-auth", cfg.App.IsProduction())
	log.Info().
		Str("env", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Msg("received configs")
	if cfg.DefaultedEnvironment() {
		log.Warn().Msg("APP_ENV is not set, running with development defaults: non-Secure cookies and 24h tokens")
	}
	if cfg.LongLivedTokens() {
		log.Warn().Dur("token_duration", cfg.App.TokenDuration).Msg("token lifetime exceeds the production default")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	publisher := events.NewPublisher(cfg.Events, log)
	defer publisher.Close()

	services, err := service.NewServices(storages, publisher, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	sessions, err := session.NewManager(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session manager")
	}

	handlers, err := handler.NewHandlers(services, sessions, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
