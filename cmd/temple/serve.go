package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnwards/temple/internal/api"
	"github.com/johnwards/temple/internal/api/admin"
	"github.com/johnwards/temple/internal/api/attributetypes"
	"github.com/johnwards/temple/internal/api/models"
	"github.com/johnwards/temple/internal/api/projects"
	"github.com/johnwards/temple/internal/api/ui"
	"github.com/johnwards/temple/internal/config"
	"github.com/johnwards/temple/internal/metrics"
	"github.com/johnwards/temple/internal/store"
)

const shutdownTimeout = 10 * time.Second

// serve runs the HTTP server until ctx is cancelled, then drains it.
func serve(ctx context.Context, cfg config.Config, log *zap.Logger, s *store.SQLiteStore) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, log, s, metrics.New()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting temple server", cfg.Fields()...)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// newHandler wires every route and the middleware chain.
func newHandler(cfg config.Config, log *zap.Logger, s *store.SQLiteStore, m *metrics.HTTPMetrics) http.Handler {
	mux := http.NewServeMux()

	projects.RegisterRoutes(mux, s)
	models.RegisterRoutes(mux, s)
	attributetypes.RegisterRoutes(mux, s)
	admin.RegisterRoutes(mux, s)
	ui.RegisterRoutes(mux)

	mux.Handle("GET /healthz", api.Health(s))
	mux.Handle("GET /metrics", m.Handler())

	// Catch-all: 404 in the API error format.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, r, http.StatusNotFound, api.NewNotFoundError(
			fmt.Sprintf("No route found for %s %s", r.Method, r.URL.Path),
			api.CorrelationID(r.Context()),
		))
	})

	// Metrics reads the matched pattern from the request the mux saw, so
	// it must sit inside every middleware that replaces the request.
	return api.Chain(mux,
		api.Recovery(),
		api.RequestID(log),
		api.Logging(),
		api.Metrics(m),
		api.Auth(cfg.AuthToken),
		api.JSONContentType(),
	)
}
