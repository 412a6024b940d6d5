package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pintag-dev/pintag/internal/logger"
	"github.com/pintag-dev/pintag/internal/middleware"
	"github.com/pintag-dev/pintag/internal/middleware/metrics"
	"github.com/pintag-dev/pintag/internal/setup"
	"github.com/pintag-dev/pintag/web"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logging(logger.Log))
	r.Use(metrics.Middleware)

	// CORS for a separately hosted client during development; the embedded
	// client is same-origin and does not need it
	if len(deps.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.Config.CorsOrigins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", middleware.IdentityHeader},
		}))
	}

	h := deps.Handler

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Public routes
	r.Post("/users", h.CreateUser)
	r.Post("/login", h.Login)

	// Identity-gated routes
	r.Group(func(r chi.Router) {
		r.Use(deps.Identity.Required())

		r.Get("/users", h.GetUsers)
		r.Post("/images", h.CreateImage)
		r.Get("/images", h.GetImages)
		r.Post("/images/{imageId}/threads", h.CreateThread)
		r.Get("/images/{imageId}/threads", h.GetThreadsForImage)
		r.Patch("/threads/{threadId}", h.UpdateThreadPosition)
		r.Delete("/threads/{threadId}", h.DeleteThread)
	})

	// Embedded single-page client
	r.Handle("/*", web.Handler())

	return r
}
