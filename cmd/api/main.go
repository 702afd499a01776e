package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dbprobe/config"
	httpHandler "dbprobe/internal/adapter/http/handler"
	"dbprobe/internal/adapter/http/middleware"
	mysqlStorage "dbprobe/internal/adapter/storage/mysql"
	redisStorage "dbprobe/internal/adapter/storage/redis"
	"dbprobe/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Service: "dbprobe-api",
	})

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting DB probe service")

	if err := mysqlStorage.UseLogger(log); err != nil {
		log.Fatal().Err(err).Msg("Failed to install MySQL driver logger")
	}

	prober, err := mysqlStorage.NewProber(cfg.Database, mysqlStorage.ServiceQuery, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure database prober")
	}

	deps := httpHandler.RouterDeps{
		Prober: prober,
		Mode:   cfg.Server.Mode,
		Logger: log,
	}

	// Rate limiting is opt-in and needs Redis.
	if cfg.RateLimit.Enabled {
		rdb, err := redisStorage.NewClient(context.Background(), cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		deps.RateLimit = middleware.RateLimitRule{
			Limit:  cfg.RateLimit.Limit,
			Window: cfg.RateLimit.Window,
		}
		log.Info().
			Int64("limit", cfg.RateLimit.Limit).
			Dur("window", cfg.RateLimit.Window).
			Msg("Rate limiting enabled")
	}

	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
