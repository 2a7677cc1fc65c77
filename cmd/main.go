package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"shop-service/internal/api"
	"shop-service/internal/cache"
	"shop-service/internal/config"
	"shop-service/internal/consumer"
	"shop-service/internal/events"
	"shop-service/internal/repository"
	"shop-service/internal/service"
	"shop-service/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.IsTest() {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "shop-service").Logger()
	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	log.Logger = logger
	service.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDB(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer db.Close()

	if err := migrations.AutoMigrate(ctx, db, cfg.DB.Dialect(), cfg.DB.MigrateRetries); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate tables")
	}

	var store service.Cache = cache.NopCache{}
	if cfg.Redis.Enabled() {
		rdb := config.NewRedisClient(cfg.Redis)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, running without cache")
		} else {
			store = cache.NewRedisCache(rdb)
		}
	}

	var publisher service.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled() {
		kafkaWriter := config.NewKafkaWriter(cfg.Kafka)
		defer kafkaWriter.Close()
		publisher = events.NewKafkaPublisher(kafkaWriter)

		if cfg.Kafka.ConsumerEnabled {
			auditConsumer := consumer.NewConsumer(config.NewKafkaReader(cfg.Kafka))
			go auditConsumer.Start(ctx)
		}
	}

	var taskRepo service.TaskRepository = repository.NewTaskMemoryRepository()
	if cfg.TaskStore == config.TaskStoreSQL {
		taskRepo = repository.NewTaskRepository(db)
	}

	userRepo := repository.NewUserRepository(db)
	services := api.Services{
		Users:    service.NewUserService(userRepo, publisher),
		Products: service.NewProductService(repository.NewProductRepository(db), store, cfg.Redis.ProductTTL, publisher),
		Orders:   service.NewOrderService(repository.NewOrderRepository(db), store, cfg.Redis.IdempotencyTTL, publisher),
		Tasks:    service.NewTaskService(taskRepo, publisher),
		Catalog:  service.NewCatalogService(),
	}
	if cfg.Auth.JWTSecret != "" {
		services.Auth = service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	}

	e, err := api.NewServer(services, api.Options{
		Logger:           logger,
		RateLimitEnabled: cfg.HTTP.RateLimitEnabled,
		RateLimit:        cfg.HTTP.RateLimit,
		RateBurst:        cfg.HTTP.RateBurst,
		RateExpiresIn:    cfg.HTTP.RateExpiresIn,
		AuthRequired:     cfg.Auth.Required,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build server")
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("Starting shop-service")
		if err := e.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
