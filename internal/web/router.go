package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/josa/internal/web/handlers"
	"github.com/jusunglee/josa/internal/web/middleware"
)

type Config struct {
	// Origins allowed by CORS; empty allows any.
	Origins []string
	// Workers bounds batch concurrency per request.
	Workers int
	// RateLimit is the number of POST requests allowed per IP per minute.
	RateLimit int
}

type Router struct {
	log *slog.Logger
	cfg Config
}

func NewRouter(log *slog.Logger, cfg Config) *Router {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 60
	}
	return &Router{log: log, cfg: cfg}
}

// Handler builds the API mux. ctx bounds background work such as rate
// limiter cleanup.
func (r *Router) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	josaHandler := handlers.NewJosaHandler(r.log, r.cfg.Workers)
	rateLimiter := middleware.NewRateLimiter(ctx, r.cfg.RateLimit, time.Minute)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.Handle("GET /api/v1/josas",
		middleware.Chain(
			http.HandlerFunc(josaHandler.List),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, max-age=86400"),
		),
	)

	mux.Handle("GET /api/v1/select",
		middleware.Chain(
			http.HandlerFunc(josaHandler.Select),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, max-age=3600"),
		),
	)

	mux.Handle("POST /api/v1/append",
		middleware.Chain(
			http.HandlerFunc(josaHandler.Append),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	return middleware.CORS(r.cfg.Origins)(mux)
}
