package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/entropass/entropass/internal/config"
	"github.com/entropass/entropass/internal/database"
	"github.com/entropass/entropass/internal/handler"
	"github.com/entropass/entropass/internal/logger"
	"github.com/entropass/entropass/internal/middleware"
	"github.com/entropass/entropass/internal/repository"
	"github.com/entropass/entropass/internal/router"
	"github.com/entropass/entropass/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", handler.Version).Msg("starting entropass server")

	checks := make(map[string]handler.HealthChecker)

	// Redis backs the rate limiter
	var counter middleware.Counter
	if cfg.Security.RateLimiting.Enabled {
		rdb, err := database.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer rdb.Close()
		counter = rdb
		checks["redis"] = rdb
		log.Info().Msg("connected to Redis")
	}

	// PostgreSQL holds the optional audit trail
	var audit service.AuditRecorder
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		audit = repository.NewAuditRepository(db)
		checks["postgres"] = db
		log.Info().Msg("connected to PostgreSQL")
	}

	svc := service.NewPasswordService(nil, audit, cfg.Generator, log)
	log.Info().
		Int("letters", cfg.Generator.Letters).
		Int("symbols", cfg.Generator.Symbols).
		Int("numbers", cfg.Generator.Numbers).
		Float64("min_entropy_bits", cfg.Generator.MinEntropyBits).
		Bool("exclude_ambiguous", cfg.Generator.ExcludeAmbiguous).
		Bool("audit", cfg.Audit.Enabled).
		Msg("password service initialized")

	h := handler.New(svc, log, cfg, checks)
	mw := middleware.New(counter, log, cfg)
	r := router.New(h, mw, cfg.CORS.AllowedOrigins)

	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
