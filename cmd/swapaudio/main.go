package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/swapaudio/config"
	"github.com/bnema/swapaudio/internal/adapter/converter/ffmpeg"
	HTTPAdapter "github.com/bnema/swapaudio/internal/adapter/http"
	"github.com/bnema/swapaudio/internal/adapter/http/ratelimit"
	"github.com/bnema/swapaudio/internal/adapter/storage/local"
	sqlitestore "github.com/bnema/swapaudio/internal/adapter/storage/sqlite"
	"github.com/bnema/swapaudio/internal/infrastructure/logger"
	"github.com/bnema/swapaudio/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Printf("failed to load config: %v", err)
		os.Exit(1)
	}
	logger.SetDebug(cfg.Debug)

	logger.Info.Printf("starting swapaudio on port %d, workers=%d queue=%d", cfg.Port, cfg.Workers, cfg.QueueSize)

	area, err := local.NewArea(cfg.DataDir)
	if err != nil {
		logger.Error.Printf("failed to prepare storage area: %v", err)
		os.Exit(1)
	}
	logger.Info.Printf("storage area: %s", area.Dir())

	store, err := sqlitestore.NewStore(cfg.DBPath)
	if err != nil {
		logger.Error.Printf("failed to open job ledger: %v", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	if n, err := store.ResetStalled(); err != nil {
		logger.Warn.Printf("failed to reset interrupted jobs: %v", err)
	} else if n > 0 {
		logger.Info.Printf("marked %d interrupted job(s) as failed", n)
	}

	converter := ffmpeg.NewConverter(cfg.FFmpegPath, cfg.FFprobePath)
	executor := service.NewExecutor(converter, area, store, cfg.KeepUploads)

	poolCtx, poolCancel := context.WithCancel(context.Background())
	defer poolCancel()

	pool := service.NewWorkerPool(executor, cfg.Workers, cfg.QueueSize)
	pool.Start(poolCtx)

	var scheduler *service.RetentionScheduler
	if cfg.RetentionHours > 0 {
		sweeper := service.NewSweeper(area, store, service.NewRetentionPolicy(cfg.RetentionHours))
		scheduler, err = service.NewRetentionScheduler(sweeper, cfg.CleanupSchedule)
		if err != nil {
			logger.Error.Printf("invalid CLEANUP_SCHEDULE: %v", err)
			os.Exit(1)
		}
		scheduler.Start()
		logger.Info.Printf("retention: files older than %dh removed on %q", cfg.RetentionHours, cfg.CleanupSchedule)
	}

	var limiter *ratelimit.ClientLimiter
	if cfg.RateLimit > 0 {
		limiter = ratelimit.NewClientLimiter(cfg.RateLimit, time.Minute, time.Minute)
		defer limiter.Close()
	}

	handlers := HTTPAdapter.NewHandlers(area, pool, store, cfg.PublicBaseURL, cfg.MaxUploadSizeMB)
	server := HTTPAdapter.NewServer(handlers, HTTPAdapter.Options{
		CORSOrigin:  cfg.CORSOrigin,
		RateLimiter: limiter,
		BehindProxy: cfg.BehindProxy,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server,
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       10 * time.Minute,
		// Requests stay open while ffmpeg runs.
		WriteTimeout: 30 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info.Printf("server listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error.Printf("server failed: %v", err)
			os.Exit(1)
		}
	case <-sigCtx.Done():
		logger.Info.Printf("received shutdown signal")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer shutdownCancel()

	// Stop intake first so no request is left waiting on a stopped pool.
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("http shutdown error: %v", err)
	}
	if err := pool.Stop(shutdownCtx); err != nil {
		logger.Error.Printf("worker pool shutdown error: %v", err)
	}
	if scheduler != nil {
		if err := scheduler.Stop(shutdownCtx); err != nil {
			logger.Error.Printf("retention scheduler shutdown error: %v", err)
		}
	}

	logger.Info.Printf("shutdown complete")
}
