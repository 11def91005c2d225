package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohits-web03/ideaforge/internal/api"
	"github.com/rohits-web03/ideaforge/internal/api/handlers"
	"github.com/rohits-web03/ideaforge/internal/auth"
	"github.com/rohits-web03/ideaforge/internal/config"
	"github.com/rohits-web03/ideaforge/internal/export"
	"github.com/rohits-web03/ideaforge/internal/generator"
	"github.com/rohits-web03/ideaforge/internal/logger"
	"github.com/rohits-web03/ideaforge/internal/repositories"
	"go.uber.org/zap"
)

// @title AI Business Idea Generator API
// @version 1.0.0
// @description Generate, store, analyse and export startup business ideas.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	sugar, err := logger.New(cfg.LogLevel, cfg.Environment != "production")
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server stopped", "err", err)
	}
}

func run(cfg config.Config, sugar *zap.SugaredLogger) error {
	db, err := repositories.Connect(cfg, sugar)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		return fmt.Errorf("token manager: %w", err)
	}

	var archive handlers.Archiver
	if cfg.R2.Enabled() {
		archive = repositories.NewExportArchive(cfg.R2)
		sugar.Infow("export archiving enabled", "bucket", cfg.R2.BucketName)
	}

	handler := api.SetupRouter(api.Dependencies{
		Config:    cfg,
		Log:       sugar,
		DB:        db,
		Tokens:    tokens,
		Generator: generator.NewTemplateGenerator(),
		Renderer:  export.NewPDFRenderer(),
		Archive:   archive,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("starting server", "app", config.ProjectName, "version", config.Version, "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
