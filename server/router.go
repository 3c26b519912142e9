package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/handlers"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	API    *handlers.TotenbildHandler
	Pages  *handlers.PageHandler
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler
}

// Options configures the router middleware.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	Sessions       handlers.SessionManager
	Logger         *zap.Logger
}

// NewRouter wires the public pages, the JSON API and the administrative surface.
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handlers.RequestLogger(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(corsHandler.Handler)

	r.Get("/healthz", h.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", h.API.Search)
		r.Get("/today", h.API.Today)
		r.Route("/totenbilder", func(r chi.Router) {
			r.Get("/{nid}", h.API.GetByID)
			r.Get("/alias/{alias}", h.API.GetByAlias)
		})
		r.Get("/auth/session", h.Auth.Session)
	})

	r.Get("/", h.Pages.Home)
	r.Get("/today", h.Pages.Today)
	r.Get("/person/{nid}", h.Pages.Person)
	r.Get("/totenbild/{alias}", h.Pages.Alias)
	r.Get("/impressum", h.Pages.Static("impressum"))
	r.Get("/datenschutz", h.Pages.Static("datenschutz"))

	r.Get("/login", h.Auth.LoginPage)
	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)
	r.With(handlers.RequireSession(opts.Sessions)).Get("/admin", h.Auth.Admin)

	return r
}
