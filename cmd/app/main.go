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

	"github.com/olivergarza/soccer-rpg/internal/concurrency"
	"github.com/olivergarza/soccer-rpg/internal/config"
	"github.com/olivergarza/soccer-rpg/internal/database"
	"github.com/olivergarza/soccer-rpg/internal/database/postgres"
	"github.com/olivergarza/soccer-rpg/internal/game"
	"github.com/olivergarza/soccer-rpg/internal/handler"
	"github.com/olivergarza/soccer-rpg/internal/logger"
	"github.com/olivergarza/soccer-rpg/internal/server"
	"github.com/olivergarza/soccer-rpg/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	if err := database.MigrateUp(cfg.GetDBConnString()); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxIdleTime,
		database.DefaultMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewPlayerRepository(pool)
	locks := concurrency.NewLockManager()
	gameService := game.NewService(repo, locks, cfg.PlayerName)

	resetWorker := worker.NewDailyResetWorker(repo, locks)
	resetWorker.Start()

	srv := server.NewServer(cfg.Port, pool, gameService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := resetWorker.Shutdown(ctx); err != nil {
		slog.Error("Daily reset worker shutdown failed", "error", err)
	}
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
