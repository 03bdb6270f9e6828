package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cash-wallet-tracker/config"
	advisoryClient "cash-wallet-tracker/internal/adapter/advisory"
	httpHandler "cash-wallet-tracker/internal/adapter/http/handler"
	pgStorage "cash-wallet-tracker/internal/adapter/storage/postgres"
	redisStorage "cash-wallet-tracker/internal/adapter/storage/redis"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/internal/service"
	"cash-wallet-tracker/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Cash Wallet Tracker")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	notifRepo := pgStorage.NewNotificationRepo(pool)
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize core services
	pinHasher := service.NewArgon2PINHasher()

	// Initialize business services
	ledgerSvc := service.NewLedgerService(walletRepo, txRepo, notifRepo, pinHasher, transactor, log)
	insightSvc := service.NewInsightService(walletRepo, txRepo, log)
	resetSvc := service.NewResetService(walletRepo, settingsRepo, notifRepo, log)
	backupSvc := service.NewBackupService(walletRepo, txRepo, notifRepo, settingsRepo, log)
	notifSvc := service.NewNotificationService(notifRepo, log)

	// Advisory collaborator is optional: without a base URL the endpoints
	// are not mounted and classifications fall back to local heuristics.
	var advisorySvc ports.AdvisoryService
	if cfg.Advisory.BaseURL != "" {
		client := advisoryClient.NewClient(cfg.Advisory.BaseURL, cfg.Advisory.Timeout, log)
		cache := redisStorage.NewAdvisoryCache(rdb)
		advisorySvc = service.NewAdvisoryService(client, cache, walletRepo, txRepo, cfg.Advisory.CacheTTL, log)
		log.Info().Str("base_url", cfg.Advisory.BaseURL).Msg("Advisory collaborator enabled")
	} else {
		log.Info().Msg("Advisory collaborator disabled, no base URL configured")
	}

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		InsightSvc:     insightSvc,
		ResetSvc:       resetSvc,
		BackupSvc:      backupSvc,
		AdvisorySvc:    advisorySvc,
		NotifSvc:       notifSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Monthly reset check runs on startup and then once a day. The check
	// itself is idempotent, so firing it more often than needed is harmless.
	resetCtx, stopReset := context.WithCancel(ctx)
	defer stopReset()
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			if outcome, err := resetSvc.CheckAndReset(resetCtx, time.Now().UTC()); err != nil {
				log.Error().Err(err).Msg("Monthly reset check failed")
			} else if outcome.Performed {
				log.Info().Int("wallets_updated", outcome.WalletsUpdated).Msg("Monthly limits reset")
			}
			select {
			case <-ticker.C:
			case <-resetCtx.Done():
				return
			}
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")
	stopReset()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
