package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/wqi/internal/broker"
	"github.com/MikeSquared-Agency/wqi/internal/config"
)

func NewRouter(b *broker.Broker, cfg *config.Config, logger *slog.Logger) http.Handler {
	if cfg.Server.AdminToken == "" {
		logger.Warn("WQI_ADMIN_TOKEN is not set, admin endpoints accept unauthenticated requests")
	}

	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))

	index := NewIndexHandler(b, cfg.Batch.MaxSamples)
	weights := NewWeightsHandler(b)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/index", index.Compute)
		r.Post("/wqi", index.Compute)
		r.Post("/index/batch", index.Batch)

		r.Get("/classify", Classify)
		r.Get("/weights", weights.Get)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Put("/admin/weights", weights.Update)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
