package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/config"
	apphttp "fintrack/internal/http"
	"fintrack/internal/ledger/memory"
	applog "fintrack/internal/log"
)

func main() {
	// Load .env for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		applog.Setup(applog.Config{}).Error("Failed to load configuration", applog.FieldError, err)
		os.Exit(1)
	}

	logger := applog.Setup(applog.Config{Level: cfg.SlogLevel(), Format: cfg.LogFormat})

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	// The ledger lives in memory for the lifetime of the process. An
	// optional seed file pre-loads demo transactions; nothing is persisted.
	store := memory.New()
	if cfg.SeedFile != "" {
		store, err = memory.NewFromCSV(cfg.SeedFile)
		if err != nil {
			logger.Error("Failed to seed ledger", applog.FieldError, err, "seed_file", cfg.SeedFile)
			os.Exit(1)
		}
		txs, _ := store.Counts()
		logger.Info("Ledger seeded", "seed_file", cfg.SeedFile, "transactions", txs)
	}

	srv := apphttp.NewServer(apphttp.Options{
		Addr:               cfg.Addr,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}, store, store, store)
	srv.ReadTimeout = cfg.ReadTimeout
	srv.WriteTimeout = cfg.WriteTimeout
	srv.IdleTimeout = cfg.IdleTimeout
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting fintrack server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
