package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JDGuzman2001/chocolatin-metrics-backend/config"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/repository"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/service"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/web"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/pkg/logger"
	"github.com/joho/godotenv"
)

type storage interface {
	service.RepoAPI
	Close()
}

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := logger.New(os.Stdout, logger.ParseLevel(cfg.Log.Level))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect to database",
			slog.String("driver", cfg.Storage.Driver),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer repo.Close()

	svc := service.New(repo)
	handler := web.NewHandler(svc, logger)
	server := web.NewServer(handler, cfg.Server.CORSOrigins)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", slog.String("error", err.Error()))
		}
	}()

	logger.Info(fmt.Sprintf("starting server on :%s", cfg.Server.Port),
		slog.String("driver", cfg.Storage.Driver))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func openStorage(ctx context.Context, cfg config.Config) (storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		sqlDB, err := repository.OpenSQLite(ctx, cfg.SQLite.Path, cfg.SQLite.InitSchema)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLite(sqlDB), nil
	default:
		pool, err := repository.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repository.New(pool), nil
	}
}
