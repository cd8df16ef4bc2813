package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/anveshm/budgetwise/internal/auth"
	"github.com/anveshm/budgetwise/internal/config"
	"github.com/anveshm/budgetwise/internal/seed"
	"github.com/anveshm/budgetwise/internal/server"
	"github.com/anveshm/budgetwise/internal/storage/sqlite"
	"github.com/anveshm/budgetwise/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	store, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DatabasePath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Seed before binding the listener: a failed or partial seed must never
	// serve traffic.
	if cfg.SeedOnStart {
		pipeline := seed.NewPipeline(store, auth.NewBcryptHasher(), cfg.DemoUsers)
		if err := pipeline.Run(ctx); err != nil {
			slog.Error("Seeding failed, refusing to start", "state", pipeline.State(), "error", err)
			os.Exit(1)
		}
	}

	jwtManager := auth.NewJWTManager(cfg.SecretKey, cfg.TokenDuration)
	srv := server.New(store, jwtManager).HTTPServer(cfg.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "address", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
