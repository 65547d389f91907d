package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/omniwork/contracthub/internal/api"
	"github.com/omniwork/contracthub/internal/config"
	"github.com/omniwork/contracthub/internal/contracts"
	"github.com/omniwork/contracthub/internal/storage"
	"github.com/omniwork/contracthub/internal/storage/cache"
	"github.com/omniwork/contracthub/internal/storage/memdb"
	"github.com/omniwork/contracthub/internal/storage/postgres"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Initialize the configured storage driver
	var underlying storage.Driver
	if cfg.UsesPostgres() {
		log.Info().Msg("initializing database connection...")
		underlying = postgres.New(cfg.PostgresDSN)
	} else {
		log.Info().Msg("initializing in-memory storage...")
		underlying = memdb.New()
	}
	if err := underlying.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the storage driver")
	}

	// Wrap the storage driver with the in-memory caching layer
	driver := cache.New(underlying, cfg.CacheTTL)
	if err := driver.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the caching storage driver")
	}
	defer func() {
		driver.Close()
		underlying.Close()
	}()

	// Seed the contract corpus if requested
	if cfg.SeedCorpus {
		log.Info().Msg("seeding the contract corpus...")
		n, err := contracts.Seed(context.Background(), driver.Contracts())
		if err != nil {
			log.Fatal().Err(err).Msg("could not seed the contract corpus")
		}
		log.Info().Int("amount", n).Msg("registered missing corpus contracts")
	}

	// Start up the catalog API
	log.Info().Str("address", cfg.ListenAddress).Msg("starting up the catalog API...")
	apis := &api.Service{
		Config:  cfg,
		Storage: driver,
	}
	apiErrs := make(chan error, 1)
	apis.Startup(apiErrs)
	go func() {
		err := <-apiErrs
		log.Fatal().Err(err).Msg("the API service raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the catalog API...")
		apis.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}
