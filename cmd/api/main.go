// Package main is the entry point for the CommutePro web server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/commutepro/internal/config"
	"github.com/pkordes/commutepro/internal/handler"
	"github.com/pkordes/commutepro/internal/logging"
	"github.com/pkordes/commutepro/internal/middleware"
	"github.com/pkordes/commutepro/internal/repo"
	"github.com/pkordes/commutepro/internal/service"
	"github.com/pkordes/commutepro/internal/views"
)

const appName = "commutepro"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := logging.New(os.Stdout, cfg, appName, version)
	slog.SetDefault(logger)

	// --- Templates --------------------------------------------------------
	if err := views.LoadTemplates(); err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	// --- Sessions ---------------------------------------------------------
	sessions, err := repo.NewSessionRepo(repo.SessionOptions{
		MaxSessions: cfg.SessionMax,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		slog.Error("failed to create session store", "error", err)
		os.Exit(1)
	}
	wizard := service.NewWizardService(sessions, service.StaticRecommender{})

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → SlogLogger → Recoverer → MaxBodySize.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srvHandlers := handler.NewServer(wizard, handler.Options{
		SecureCookies: cfg.IsProd(),
		SessionTTL:    cfg.SessionTTL,
	})
	srvHandlers.Routes(r, middleware.NewCORSHandler(cfg.CORSOrigins))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting",
			"addr", srv.Addr,
			"env", cfg.AppEnv,
			"log_level", cfg.LogLevel.String(),
			"session_ttl", cfg.SessionTTL.String(),
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	// Give in-flight requests up to 15 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
