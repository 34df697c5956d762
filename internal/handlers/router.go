package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jems1213/nexus/internal/middleware"
	"github.com/jems1213/nexus/internal/utils"
)

// RouterConfig carries the deployment-specific pieces of the router: the
// allowed CORS origins and whether error detail may leak into responses.
type RouterConfig struct {
	CORSOrigins []string
	Dev         bool
}

// NewRouter mounts all API routes. The contacts listing sits behind the
// injected Authorizer.
func NewRouter(h *Handler, authz middleware.Authorizer, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recover(cfg.Dev))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)

	r.Get("/api/health", h.Health.Check)

	r.Post("/api/signup", h.Auth.SignUp)
	r.Post("/api/login", h.Auth.Login)
	r.Post("/api/google-login", h.Auth.GoogleLogin)

	r.Post("/api/contact", h.Contact.Submit)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(authz))
		r.Get("/api/contacts", h.Contact.List)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.Fail(w, http.StatusNotFound, "Endpoint not found")
	})

	return r
}
