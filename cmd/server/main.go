package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/burakcnaksy0/classifieds-service/internal/adapter/messaging/nats"
	"github.com/burakcnaksy0/classifieds-service/internal/adapter/repository/cache"
	"github.com/burakcnaksy0/classifieds-service/internal/adapter/repository/mongodb"
	"github.com/burakcnaksy0/classifieds-service/internal/adapter/rest"
	"github.com/burakcnaksy0/classifieds-service/internal/adapter/storage/s3"
	"github.com/burakcnaksy0/classifieds-service/internal/config"
	"github.com/burakcnaksy0/classifieds-service/internal/listing/usecase"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/metrics"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/tracer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogFormat,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger.Infof("Starting %s", cfg.ServiceName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp := tracer.InitTracer(cfg.ServiceName, cfg.OTExporterOTLPEndpoint, appLogger)
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			appLogger.Errorf("Failed to shut down tracer provider: %v", err)
		}
	}()

	metricsManager := metrics.NewManager(cfg.ServiceName)
	go func() {
		if err := metrics.StartServer(cfg.PrometheusMetricsPort, appLogger, metricsManager.Registry); err != nil {
			appLogger.Errorf("Metrics server stopped: %v", err)
		}
	}()

	mongoClient, err := mongodb.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatalf("Failed to ensure MongoDB indexes: %v", err)
	}

	redisClient, err := cache.NewClient(ctx, cache.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() { _ = redisClient.Close() }()

	publisher, err := nats.NewPublisher(cfg.NATSURL)
	if err != nil {
		appLogger.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer publisher.Close()

	imageStorage, err := s3.NewImageStorage(
		cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to initialize image storage: %v", err)
	}

	listingRepo := mongodb.NewListingRepository(db, appLogger)
	searchRepo := mongodb.NewSearchRepository(db, appLogger)
	categoryRepo := mongodb.NewCategoryRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	listingCache := cache.NewListingCache(redisClient, cfg.ListingCacheTTL)
	suggestionCache := cache.NewSuggestionCache(redisClient, cfg.SuggestionCacheTTL)
	savedSearches := cache.NewSavedSearchStore(redisClient)

	summarizer := usecase.NewSummarizer(categoryRepo, userRepo, imageStorage, appLogger)
	listingUC := usecase.NewListingUsecase(listingRepo, categoryRepo, listingCache, imageStorage, publisher, appLogger)
	feedUC := usecase.NewFeedUsecase(listingRepo, searchRepo, summarizer, cfg.FeedPaginationMode, appLogger)
	searchUC := usecase.NewSearchUsecase(searchRepo, suggestionCache, savedSearches, summarizer, appLogger)
	compareUC := usecase.NewCompareUsecase(listingRepo, categoryRepo, imageStorage, appLogger)

	handler := rest.NewHandler(listingUC, feedUC, searchUC, compareUC, metricsManager, appLogger)
	router := rest.NewRouter(handler, cfg.JWTSecret, cfg.ServiceName, appLogger, metricsManager)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Infof("Received signal %s, shutting down", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("HTTP server shutdown failed: %v", err)
	}
	appLogger.Infof("Shutdown complete")
}
