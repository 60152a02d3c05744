// Package server wires configuration, storage, services and the HTTP API
// into a runnable application.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/apetrenko/contentgen/internal/logging"
	"github.com/apetrenko/contentgen/internal/server/config"
	"github.com/apetrenko/contentgen/internal/server/gemini"
	"github.com/apetrenko/contentgen/internal/server/httpapi"
	"github.com/apetrenko/contentgen/internal/server/repositories/repomanager"
	"github.com/apetrenko/contentgen/internal/server/services"
)

type App struct {
	cfg    *config.Config
	logger logging.Logger
}

func NewApp(cfg *config.Config, logger logging.Logger) *App {
	return &App{cfg: cfg, logger: logger}
}

// Run starts the server and blocks until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	db, err := repomanager.Open(a.cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	generator := gemini.NewClient(a.cfg.GeminiAPIKey, a.cfg.GeminiModel, a.cfg.GeminiTimeout)
	if !generator.Configured() {
		a.logger.Warn(ctx, "gemini api key not set, using placeholder generation")
	}

	secretKey := []byte(a.cfg.SecretKey)
	userRepo := manager.Users(db)
	contentRepo := manager.Contents(db)
	templateRepo := manager.Templates(db)

	handler := httpapi.NewHandler(
		services.NewUserService(userRepo, secretKey, a.cfg.AccessTokenTTL, a.logger),
		services.NewContentService(contentRepo, generator, a.logger),
		services.NewTemplateService(templateRepo, a.logger),
		services.NewAdminService(userRepo, contentRepo, templateRepo, manager, db, generator, a.logger),
		services.NewOptionsService(),
		a.logger,
	)

	srv := &http.Server{
		Addr:         a.cfg.Addr,
		Handler:      handler.Router(secretKey, a.cfg.GenerateRateLimit),
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "server listening", "addr", a.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
