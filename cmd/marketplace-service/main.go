package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ledjassa/marketplace-service/internal/config"
	httpdelivery "github.com/ledjassa/marketplace-service/internal/delivery/http"
	publisher "github.com/ledjassa/marketplace-service/internal/infrastructure/kafka"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/metrics"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/migrate"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/notifier"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/rediscache"
	"github.com/ledjassa/marketplace-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	logger := mustInitLogger(cfg)
	defer logger.Sync()

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}
	store := postgres.NewGormStore(db)

	// Kafka publisher for order events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)
	defer pub.Close()

	// Notification gateways
	orderNotifier := notifier.NewHTTPNotifier(
		cfg.NotifierService.EmailGatewayURL,
		cfg.NotifierService.SMSGatewayURL,
		logger,
	)

	// Catalog cache
	cache := rediscache.New(cfg.RedisCache.Addr, cfg.RedisCache.Password, cfg.RedisCache.DB)
	defer cache.Close()

	orderMetrics := metrics.NewOrderMetrics()

	// Usecases
	userUsecase := usecase.NewDefaultUserUsecase(store, cfg.JWT.Secret, cfg.JWT.TokenTTL, logger)
	productUsecase := usecase.NewDefaultProductUsecase(store, cache, logger)
	orderUsecase := usecase.NewDefaultOrderUsecase(
		store,
		orderNotifier,
		pub,
		cfg.KafkaService.OrderTopic,
		orderMetrics,
		logger,
	)
	messagingUsecase := usecase.NewDefaultMessagingUsecase(store)
	ratingUsecase := usecase.NewDefaultRatingUsecase(store)

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Users:     userUsecase,
		Products:  productUsecase,
		Orders:    orderUsecase,
		Messaging: messagingUsecase,
		Ratings:   ratingUsecase,
		JWTSecret: cfg.JWT.Secret,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func mustInitLogger(cfg *config.MarketplaceConfig) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.LogConfig.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Env == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.LogConfig.LogFormat != "" {
		zapCfg.Encoding = cfg.LogConfig.LogFormat
	}
	if cfg.LogConfig.LogOutput != "" {
		zapCfg.OutputPaths = []string{cfg.LogConfig.LogOutput}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	return logger
}
