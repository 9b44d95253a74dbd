package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/bizbooks/internal/adapter/http"
	"github.com/iho/bizbooks/internal/adapter/http/handler"
	"github.com/iho/bizbooks/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/bizbooks/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/bizbooks/internal/adapter/repository/redis"
	"github.com/iho/bizbooks/internal/infrastructure/config"
	"github.com/iho/bizbooks/internal/infrastructure/logger"
	"github.com/iho/bizbooks/internal/infrastructure/postgres"
	"github.com/iho/bizbooks/internal/infrastructure/redis"
	"github.com/iho/bizbooks/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Run migrations
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis when caching is enabled
	var cache usecase.Cache
	redisClient, err := redis.NewClientOptional(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		cache = redisRepo.NewCache(redisClient)
		log.Info().Msg("connected to redis")
	} else {
		log.Info().Msg("redis disabled, statement caching off")
	}

	// Initialize repositories
	retrier := postgresRepo.NewRetrier()
	saleRepo := postgresRepo.NewSaleRepository(pool, retrier)
	purchaseRepo := postgresRepo.NewPurchaseRepository(pool, retrier)
	voucherRepo := postgresRepo.NewVoucherRepository(pool, retrier)
	partyRepo := postgresRepo.NewPartyRepository(pool, retrier)
	inventoryRepo := postgresRepo.NewInventoryRepository(pool, retrier)
	transactionRepo := postgresRepo.NewTransactionRepository(pool, retrier)

	// Initialize use cases
	statementUC := usecase.NewStatementUseCase(saleRepo, purchaseRepo, voucherRepo, partyRepo, cache)
	statementUC.SetCacheTTL(cfg.StatementCacheTTL)
	stockUC := usecase.NewStockUseCase(inventoryRepo, transactionRepo)
	partyUC := usecase.NewPartyUseCase(partyRepo)

	// Initialize handlers
	statementHandler := handler.NewStatementHandler(statementUC)
	stockHandler := handler.NewStockHandler(stockUC)
	partyHandler := handler.NewPartyHandler(partyUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		StatementHandler: statementHandler,
		StockHandler:     stockHandler,
		PartyHandler:     partyHandler,
		HealthHandler:    healthHandler,
		Logger:           appLogger,
		RateLimiter:      limiter,
	})

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

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
