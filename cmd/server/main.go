package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkloth/internal/adapter"
	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/crypto"
	"github.com/MKhiriev/inkloth/internal/handler"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/server"
	"github.com/MKhiriev/inkloth/internal/service"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/workers"
	"github.com/MKhiriev/inkloth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("inkloth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("mail_driver", cfg.Adapter.Mail.Driver).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	mailer, err := adapter.NewMailer(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	uploader, err := adapter.NewImageUploader(ctx, cfg.Adapter.S3, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating image uploader")
	}

	pool := workers.NewPool(cfg.Workers.HashConcurrency)

	services, err := service.NewServices(service.Dependencies{
		Storages: store.NewStorages(db, log),
		Hasher:   crypto.NewPasswordHasher(cfg.App.BcryptCost, pool),
		Mailer:   mailer,
		Uploader: uploader,
	}, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
