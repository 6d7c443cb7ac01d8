package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"spotcast/internal/config"
	"spotcast/internal/logger"
	"spotcast/internal/scheduler"
	"spotcast/internal/server"
)

func main() {
	// A .env file is a local-run convenience, absence is normal
	_ = godotenv.Load()

	ctx := context.Background()
	log := logger.GetGlobalLogger().WithComponent("main")

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal("failed to load configuration", err)
	}

	log.Info("starting spotcast", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"version":     config.GetVersion(),
	})

	srv, err := server.NewServer(ctx, cfg)
	if err != nil {
		log.Fatal("failed to create server", err)
	}
	defer srv.Close()

	sched := scheduler.New()
	err = sched.AddJob("contest_refresh", cfg.ContestRefreshInterval(), func(ctx context.Context) error {
		srv.Contests.Refresh(ctx)
		return nil
	})
	if err != nil {
		log.Fatal("failed to schedule contest refresh", err)
	}
	if cfg.ArchiveEnabled {
		if err := sched.AddJob("forecast_snapshot", cfg.SnapshotInterval(), srv.ArchiveSnapshot); err != nil {
			log.Fatal("failed to schedule forecast snapshots", err)
		}
	}
	sched.Start()
	defer sched.Stop()

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.SetupRoutes(),
		// The worst-case aggregation walks every source at full deadline,
		// so the write timeout stays well above sources x fetch timeout
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("HTTP server error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", err)
	}
	log.Info("server stopped")
}
