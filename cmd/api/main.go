package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/medconnect/portal-api/internal/api"
	"github.com/medconnect/portal-api/internal/core/service"
	"github.com/medconnect/portal-api/internal/infrastructure/config"
	"github.com/medconnect/portal-api/internal/infrastructure/memstore"
	"github.com/medconnect/portal-api/internal/infrastructure/queue"
	"github.com/medconnect/portal-api/pkg/logger"
)

// @title        MedConnect Portal API
// @version      1.0
// @description  Registration, login, and role-routed dashboards for the MedConnect healthcare portal.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// All state is process-local: sessions, registered identities, and
	// picture drafts vanish on restart.
	sessionStore := memstore.NewSessionStore()
	registry := memstore.NewIdentityRegistry()
	drafts := memstore.NewDraftStore()

	dispatcher := queue.NewDispatcher(cfg.Picture.Workers, drafts, log)
	dispatcher.Start(ctx)

	sessions := service.NewSessionService(
		sessionStore,
		registry,
		drafts,
		cfg.JWTSecret,
		cfg.Session.TokenTTL,
		cfg.Session.SubmitDelay,
		log,
	)

	e := api.NewRouter(api.Deps{
		Sessions:     sessions,
		SessionStore: sessionStore,
		Dispatcher:   dispatcher,
		Drafts:       drafts,
		Log:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server exited")
}
