package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/pkg/config"
	"github.com/youcan-kampfsport/website/internal/pkg/logger"
	"github.com/youcan-kampfsport/website/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	if err := logger.Init(logger.ParseLevel(os.Getenv("LOG_LEVEL")), zap.String("service", "youcan-website")); err != nil {
		return err
	}
	appLogger := logger.Log
	defer func() { _ = appLogger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := server.InitObservability(cfg.Observability, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			appLogger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv, err := server.New(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer srv.Close()

	router, app, err := server.SetupRouter(ctx, cfg, srv.DBPool(), appLogger)
	if err != nil {
		return err
	}
	if err := app.CatalogSvc.Verify(ctx); err != nil {
		return err
	}
	srv.SetRouter(router)

	pprofServer := server.StartPprofServer(cfg.Observability.PprofAddr, appLogger)
	httpServer := srv.HTTPServer()

	done := make(chan struct{})
	go server.GracefulShutdown(ctx, appLogger, done, httpServer, pprofServer)

	appLogger.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLogger.Error("Server error", zap.Error(err))
		stop()
	}

	<-done
	appLogger.Info("Graceful shutdown complete")
	return nil
}
