package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/predialtech/financing-service/internal/application/usecase"
	"github.com/predialtech/financing-service/internal/domain/service"
	"github.com/predialtech/financing-service/internal/infrastructure/cache"
	"github.com/predialtech/financing-service/internal/infrastructure/config"
	"github.com/predialtech/financing-service/internal/infrastructure/kafka"
	pgRepo "github.com/predialtech/financing-service/internal/infrastructure/postgres"
	grpcPresentation "github.com/predialtech/financing-service/internal/presentation/grpc"
	"github.com/predialtech/financing-service/internal/presentation/rest"
	"github.com/predialtech/financing-service/pkg/auth"
	pkgkafka "github.com/predialtech/financing-service/pkg/kafka"
	"github.com/predialtech/financing-service/pkg/observability"
	pkgpostgres "github.com/predialtech/financing-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting financing-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbConfig := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbConfig)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbConfig.DSN(), "file://migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close() //nolint:errcheck

	catalogRepo := pgRepo.NewOfferCatalogRepo(pool)
	catalog := cache.NewCachedOfferCatalog(catalogRepo, redisClient, cfg.CatalogCacheTTL, logger)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close() //nolint:errcheck
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	engine := service.NewSimulationEngine(service.NewCatalogFilter())

	// Wire use cases.
	simulateUC := usecase.NewSimulateFinancingUseCase(catalog, publisher, engine)
	listOffersUC := usecase.NewListOffersUseCase(catalog)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: "predial-gateway",
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			jwtSecret = "test-e2e-secret" // Match gateway default for E2E tests
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewFinancingHandler(simulateUC, listOffersUC)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, func() error {
		hcCtx, hcCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer hcCancel()
		return pkgpostgres.HealthCheck(hcCtx, pool)
	})
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("financing-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
