package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/handler"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/metrics"
	"github.com/MKhiriev/museum-user-api/internal/server"
	"github.com/MKhiriev/museum-user-api/internal/service"
	"github.com/MKhiriev/museum-user-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("museum-user-api").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("museum-user-api", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("token_duration", cfg.App.TokenDuration).
		Int("collection_limit", cfg.App.CollectionLimit).
		Msg("received configs")

	db, err := store.Connect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to store")
	}
	defer db.Close()
	metrics.SetStoreConnected()

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
