package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peakops/website/internal/api/middleware"
	"github.com/peakops/website/internal/config"
	"github.com/peakops/website/internal/logging"
	"github.com/peakops/website/internal/server"
	"github.com/peakops/website/internal/tasks"
	"github.com/peakops/website/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logConfig := logging.DefaultConfig()
	logConfig.Level = cfg.LogLevel
	logConfig.File = cfg.LogFile
	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing is optional; no endpoint means no exporter is wired up.
	tp, err := telemetry.InitTracerProvider(ctx, server.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}
	if tp != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Failed to shut down tracing: %v", err)
			}
		}()
		logger.Info("Tracing enabled, exporting to %s", cfg.OTLPEndpoint)
	}

	// Form submissions are throttled per client IP unless disabled.
	var limiter middleware.ClientLimiter = middleware.AllowAll()
	if cfg.RateLimitEnabled {
		ipLimiter := middleware.NewIPLimiter(cfg.FormRateRPS, cfg.FormRateBurst)
		limiter = ipLimiter

		janitor := tasks.NewLimiterJanitor(ipLimiter, 10*time.Minute, time.Hour)
		janitor.Start()
		defer janitor.Stop()
		logger.Info("Started rate limiter janitor")
	} else {
		logger.Warn("Rate limiting is disabled")
	}

	srv, err := server.New(cfg, limiter)
	if err != nil {
		logger.Error("Failed to create server: %v", err)
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server error: %v", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
