package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/dinheirorapido/loanledger/internal/adapter/http"
	"github.com/dinheirorapido/loanledger/internal/adapter/http/handler"
	"github.com/dinheirorapido/loanledger/internal/adapter/http/middleware"
	postgresRepo "github.com/dinheirorapido/loanledger/internal/adapter/repository/postgres"
	redisRepo "github.com/dinheirorapido/loanledger/internal/adapter/repository/redis"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/auth"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/changefeed"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/config"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/logger"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/metrics"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/postgres"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/redis"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/scheduler"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	clientRepo := postgresRepo.NewClientRepository(pool)
	loanRepo := postgresRepo.NewLoanRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	receiptRepo := postgresRepo.NewReceiptRepository(pool)
	pixKeyRepo := postgresRepo.NewPixKeyRepository(pool)
	reportRepo := postgresRepo.NewReportRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	retrier := postgresRepo.NewRetrier(log)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	clientUC := usecase.NewClientUseCase(txManager, clientRepo, loanRepo, paymentRepo, receiptRepo, outboxRepo, retrier, idGen)
	loanUC := usecase.NewLoanUseCase(txManager, loanRepo, paymentRepo, receiptRepo, clientRepo, outboxRepo, retrier, idGen)
	paymentUC := usecase.NewPaymentUseCase(txManager, loanRepo, paymentRepo, receiptRepo, outboxRepo, idGen)
	receiptUC := usecase.NewReceiptUseCase(txManager, receiptRepo, clientRepo, loanRepo, paymentRepo, outboxRepo)
	pixKeyUC := usecase.NewPixKeyUseCase(pixKeyRepo, idGen)
	reportUC := usecase.NewReportUseCase(reportRepo, cache, cfg.DashboardCacheTTL)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	// Authentication
	var jwtManager *auth.JWTManager
	var authHandler *handler.AuthHandler
	if cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		authHandler = handler.NewAuthHandler(userUC, jwtManager)
	}

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientUC)
	loanHandler := handler.NewLoanHandler(loanUC)
	paymentHandler := handler.NewPaymentHandler(paymentUC)
	receiptHandler := handler.NewReceiptHandler(receiptUC)
	pixKeyHandler := handler.NewPixKeyHandler(pixKeyUC)
	reportHandler := handler.NewReportHandler(reportUC)
	userHandler := handler.NewUserHandler(userUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ClientHandler:    clientHandler,
		LoanHandler:      loanHandler,
		PaymentHandler:   paymentHandler,
		ReceiptHandler:   receiptHandler,
		PixKeyHandler:    pixKeyHandler,
		ReportHandler:    reportHandler,
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(100, 200),
		JWTManager:       jwtManager,
		AuthEnabled:      cfg.AuthEnabled,
		Logger:           log,
	})

	// Background workers
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	feed := changefeed.NewFeed(changefeed.Config{
		OutboxRepo: outboxRepo,
		Publisher:  changefeed.NewRedisPublisher(redisClient),
		Logger:     log.With().Str("component", "changefeed").Logger(),
		BatchSize:  cfg.ChangefeedBatchSize,
		Interval:   cfg.ChangefeedInterval,
		Retention:  cfg.ChangefeedRetention,
	})
	go func() {
		if err := feed.Start(workerCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("changefeed stopped")
		}
	}()

	sweeper := scheduler.NewSweeper(loanUC, log.With().Str("component", "sweeper").Logger(), m)
	if err := sweeper.Start(cfg.SweepSchedule); err != nil {
		log.Fatal().Err(err).Msg("failed to start status sweeper")
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	stopWorkers()
	sweeper.Stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
