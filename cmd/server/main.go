package main

import (
	"context"
	"fmt"

	"github.com/msarvarov/vendor-market/internal/config"
	handlerhttp "github.com/msarvarov/vendor-market/internal/handler/http"
	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/internal/server"
	"github.com/msarvarov/vendor-market/internal/service"
	"github.com/msarvarov/vendor-market/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vendor-market-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(*storages, *cfg, log)
	handler := handlerhttp.NewHandler(services, cfg.Server.RequestTimeout, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
