package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-travel-diary/internal/config"
	"github.com/MKhiriev/go-travel-diary/internal/handler"
	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/internal/server"
	"github.com/MKhiriev/go-travel-diary/internal/service"
	"github.com/MKhiriev/go-travel-diary/internal/store"
	"github.com/MKhiriev/go-travel-diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("travel-diary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Dur("token_duration", cfg.App.EffectiveTokenDuration()).
		Bool("public_diary_mutations", cfg.Server.PublicDiaryMutations).
		Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = serve(srv, storages, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// serve runs srv until it stops and then releases storages. The returned
// error is the server failure; a close failure is only logged.
func serve(srv server.Server, storages io.Closer, log *logger.Logger) error {
	runErr := srv.RunServer()

	if err := storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}

	return runErr
}
