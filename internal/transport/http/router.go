// Package httptransport assembles the federation API router: the shared
// middleware chain, operational endpoints and every bounded context's routes.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/config"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/metrics"
	authmw "github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/middleware/auth"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/middleware/metadata"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/middleware/ratelimit"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/middleware/request"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/middleware/requesttime"
)

// Module mounts read routes.
type Module interface {
	Register(r chi.Router)
}

// WriteModule additionally mounts mutating routes, which sit behind auth when
// it is enabled.
type WriteModule interface {
	Module
	RegisterWrites(r chi.Router)
}

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

type Deps struct {
	Logger      *slog.Logger
	HTTPMetrics *metrics.HTTP
	Gatherer    prometheus.Gatherer
	CORS        config.CORSConfig
	TrustProxy  bool
	RateLimiter *ratelimit.Limiter
	// Auth guards write routes; nil leaves them open.
	Auth   authmw.JWTValidator
	Health map[string]HealthCheck
}

// NewRouter wires the middleware chain, /health, /metrics and the modules.
func NewRouter(deps Deps, modules ...Module) http.Handler {
	r := chi.NewRouter()

	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(deps.Logger))
	r.Use(request.Recovery(deps.Logger))
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware)
	}
	r.Use(cors.New(cors.Options{
		AllowedOrigins: deps.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		Debug:          deps.CORS.Debug,
	}).Handler)
	r.Use(metadata.ClientMetadata(deps.TrustProxy))
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware)
	}

	r.Get("/health", healthHandler(deps.Health))
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	for _, m := range modules {
		m.Register(r)
	}
	r.Group(func(r chi.Router) {
		if deps.Auth != nil {
			r.Use(authmw.RequireAuth(deps.Auth, deps.Logger))
		}
		for _, m := range modules {
			if wm, ok := m.(WriteModule); ok {
				wm.RegisterWrites(r)
			}
		}
	})

	deps.Logger.Info("routes configured",
		"modules", len(modules),
		"auth", deps.Auth != nil,
		"rate_limit", deps.RateLimiter != nil,
	)
	return r
}
