// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/formit/auth-service/internal/config"
	"github.com/formit/auth-service/internal/handler"
	"github.com/formit/auth-service/internal/logger"
	"github.com/formit/auth-service/internal/server"
	"github.com/formit/auth-service/internal/service"
	"github.com/formit/auth-service/internal/store"
)

// Build metadata, injected at link time via
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=...".
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	log := logger.NewLogger("auth-server")

	log.Info().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("starting auth service")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise storage")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()

	services := service.NewServices(storages, cfg, log)
	handlers := handler.NewHandlers(services, cfg, log)

	httpServer := server.NewHTTPServer(cfg.Server, handlers.HTTP.InitRoutes(), log)

	if err := server.RunUntilSignal(log, httpServer); err != nil {
		log.Error().Err(err).Msg("auth service exited with error")
		os.Exit(1)
	}

	log.Info().Msg("auth service stopped")
}
