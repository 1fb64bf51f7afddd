package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/hengtai25/portfolio-api/adapters/event"
	httpAdapter "github.com/hengtai25/portfolio-api/adapters/http"
	"github.com/hengtai25/portfolio-api/adapters/media_storage"
	"github.com/hengtai25/portfolio-api/adapters/persistence"
	"github.com/hengtai25/portfolio-api/internal/application/service"
	authUC "github.com/hengtai25/portfolio-api/internal/application/usecase/auth"
	"github.com/hengtai25/portfolio-api/internal/application/usecase/editor"
	mediaUC "github.com/hengtai25/portfolio-api/internal/application/usecase/media"
	"github.com/hengtai25/portfolio-api/internal/application/usecase/themesvc"
	"github.com/hengtai25/portfolio-api/internal/config"
	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
	"github.com/hengtai25/portfolio-api/internal/domain/theme"
	"github.com/hengtai25/portfolio-api/internal/seed"
	"github.com/hengtai25/portfolio-api/pkg/auth"
	"github.com/hengtai25/portfolio-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting portfolio API server...")

	// Settings store
	var kvStore service.KVStore
	switch cfg.Storage.Backend {
	case "postgres":
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		defer dbPool.Close()
		kvStore = persistence.NewPostgresKVStore(dbPool)
	case "redis":
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		kvStore = persistence.NewRedisKVStore(redisClient)
	default:
		appLogger.Warn("using in-memory settings store, state is lost on restart")
		kvStore = persistence.NewMemoryKVStore()
	}

	// Event bus
	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := event.NewKafkaPublisher(cfg)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		publisher = kafkaPublisher
	} else {
		appLogger.Warn("Kafka brokers not configured, events are disabled")
		publisher = event.NewNoopPublisher()
	}
	defer publisher.Close()

	// Content registry with the built-in demo version
	registry := portfolio.NewRegistry()
	if err := seed.Register(registry); err != nil {
		appLogger.Fatal("cannot seed demo portfolio", err)
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	editorSvc := editor.NewService(registry, kvStore, publisher, appLogger)
	themeSvc := themesvc.NewService(kvStore, publisher, appLogger, themesvc.ResolveOptions{
		DefaultMode: theme.Mode(cfg.Theme.DefaultMode),
	})

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(cfg, jwtSvc, appLogger)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	portfolioHandler := httpAdapter.NewPortfolioHandler(registry)
	themeHandler := httpAdapter.NewThemeHandler(themeSvc)
	editorHandler := httpAdapter.NewEditorHandler(editorSvc)

	var mediaHandler *httpAdapter.MediaHandler
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Warn("uploader not configured, media uploads are disabled", zap.Error(err))
	} else {
		uploadUseCase := mediaUC.NewUploadAssetUseCase(uploader, appLogger)
		mediaHandler = httpAdapter.NewMediaHandler(uploadUseCase)
	}

	router := httpAdapter.NewRouter(jwtSvc, authHandler, portfolioHandler, themeHandler, editorHandler, mediaHandler)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
