package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MichalMitros/commerce-seeder/cmd/seeder/config"
	"github.com/MichalMitros/commerce-seeder/internal/assets"
	"github.com/MichalMitros/commerce-seeder/internal/catalog"
	"github.com/MichalMitros/commerce-seeder/internal/commerce"
	"github.com/MichalMitros/commerce-seeder/internal/fetcher"
	"github.com/MichalMitros/commerce-seeder/internal/handler"
	"github.com/MichalMitros/commerce-seeder/internal/platform/rabbitmq"
	"github.com/MichalMitros/commerce-seeder/internal/platform/storage"
	"github.com/MichalMitros/commerce-seeder/internal/seeder"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when fetching remote images.
	UserAgent = "commerce-seeder/0.0.1"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse log level")
	}
	zerolog.SetGlobalLevel(level)

	var (
		pgDB  *sql.DB
		store seeder.Storage = storage.NewMemory()
	)
	if cfg.DatabaseURL != "" {
		pgDB, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open Postgres connection")
		}
		store = storage.NewPostgres(pgDB)
	} else {
		logger.Warn().Msg("DATABASE_URL is empty, runs won't survive restart")
	}

	clientOps := []commerce.Option{
		commerce.WithTimeout(cfg.HTTPTimeout),
		commerce.WithLogger(logger),
	}
	if cfg.Medusa.AdminAPIKey != "" {
		clientOps = append(clientOps, commerce.WithAPIKey(cfg.Medusa.AdminAPIKey))
	}

	client := commerce.NewClient(cfg.Medusa.BackendURL, clientOps...)
	if cfg.Medusa.AdminAPIKey == "" {
		if err := client.Login(ctx, cfg.Medusa.AdminEmail, cfg.Medusa.AdminPassword); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't authenticate to commerce backend")
		}
	}

	uploader := assets.NewUploader(
		os.DirFS(cfg.ImagesDir),
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent),
		client,
		assets.WithLogger(logger),
	)

	seed := seeder.NewSeeder(
		cfg.Medusa.BackendURL,
		client,
		uploader,
		store,
		seeder.WithLogger(logger),
		seeder.WithConcurrency(cfg.Seed.Concurrency),
	)

	if cfg.RunOnce {
		code := runOnce(ctx, cfg, seed, pgDB, &logger)
		cancel()
		os.Exit(code)
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	if err := conn.Declare(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare RabbitMQ topology")
	}

	han := handler.NewHandler(conn, seed, cfg.CatalogFile, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("commerce seeder up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		closeDB(pgDB, &logger)
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}

// runOnce seeds configured catalog once and returns process exit code.
func runOnce(ctx context.Context, cfg config.Config, seed *seeder.Seeder, pgDB *sql.DB, logger *zerolog.Logger) int {
	defer closeDB(pgDB, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		logger.Error().Err(err).Msg("can't load catalog")
		return 1
	}

	if err := catalog.Validate(cat); err != nil {
		logger.Error().Err(err).Msg("invalid catalog")
		return 1
	}

	run, err := seed.Seed(ctx, cat, seeder.Force(cfg.Seed.Force), seeder.Rollback(cfg.Seed.Rollback))
	if err != nil {
		logger.Error().Err(err).Msg("seeding failed")
		return 1
	}

	logger.Info().
		Int("runId", run.ID).
		Int32("created", *run.CreatedEntities).
		Int32("reused", *run.ReusedEntities).
		Msg("seeding finished")

	return 0
}

func closeDB(pgDB *sql.DB, logger *zerolog.Logger) {
	if pgDB == nil {
		return
	}

	if err := pgDB.Close(); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't close Postgres connection")
	}
}
