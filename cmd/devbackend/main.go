package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-lab-access/internal/backend"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/handler"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/server"
	"github.com/MKhiriev/go-lab-access/internal/store"
	"github.com/MKhiriev/go-lab-access/internal/workers"
	"github.com/MKhiriev/go-lab-access/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	flags := config.BindFlags(pflag.CommandLine)
	pflag.Parse()

	log := logger.NewLogger("lab-access-devbackend")
	cfg, err := config.GetBackendConfig(flags.Config())
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("driver", cfg.Storage.Driver).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	labBackend := backend.NewBackend(storages.RequestRepository, cfg.Auth, log)

	handlers, err := handler.NewHandlers(labBackend, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(
		workers.NewExpiryWorker(storages.RequestRepository, workers.DefaultExpiryInterval, log),
	).Run(ctx)

	srv.RunServer(ctx)
}

func printBuildInfo() {
	for _, line := range models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Lines() {
		fmt.Println(line)
	}
}
