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

	"github.com/walle-gg/tournament-aggregator/internal/config"
	"github.com/walle-gg/tournament-aggregator/internal/db"
	"github.com/walle-gg/tournament-aggregator/internal/metrics"
	"github.com/walle-gg/tournament-aggregator/internal/service"
	"github.com/walle-gg/tournament-aggregator/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
	slog.Info("application exited")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	database, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.DBConnectTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		} else {
			slog.Info("database connection closed")
		}
	}()

	if err := db.RunMigrations(database.DB, cfg.DatabaseDriver); err != nil {
		return err
	}

	tournamentService := service.NewTournamentService(store.NewTournamentStore(database))
	router := newRouter(tournamentService, metrics.NewHTTPMetrics("tournaments"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return err
		}
		slog.Info("server shutdown complete")
	}
	return nil
}
