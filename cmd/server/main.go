package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/handler"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/hooks"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/server"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/service"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/store"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/workers"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ephemeral-sessions")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Object("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, buildInfo, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	dispatcher := hooks.NewDispatcher(log)
	dispatcher.Install(hooks.NewSessionPlugin(cfg.Session, log))

	handlers, err := handler.NewHandlers(services, dispatcher, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers, err := workers.NewWorkers(storages, cfg.Workers, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		bgWorkers.Run(ctx)
	}()

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	stop()
	<-workersDone
	log.Info().Msg("ephemeral sessions service stopped")
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
