// Package httptransport wires the relay's HTTP surface: middleware stack,
// health probes, metrics, and the academy endpoints.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	academyHandler "academy/internal/academy/handler"
	"academy/internal/platform/health"
	"academy/internal/platform/middleware"
)

// NewRouter assembles the full route tree. Transition endpoints sit behind
// the bearer-token middleware; lookups and probes are open.
func NewRouter(
	academy *academyHandler.Handler,
	healthHandler *health.Handler,
	validator middleware.CallerValidator,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		academy.RegisterQueries(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(validator, logger))
			academy.Register(r)
		})
	})

	return r
}
