package rest

import (
	"net/http"

	"muzac-backend/infrastructure/di"
	"muzac-backend/interfaces/http/rest/handlers"
	"muzac-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()
	cfg := rt.container.Config

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// Health check stays outside the origin allowlist so load balancer
	// probes are not rejected.
	router.Get("/health", rt.healthCheck)

	router.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Use(middleware.OriginAllowlist(cfg.AllowedOrigins, rt.logger))

		// Preflight requests bypass the allowlist and succeed for any route.
		r.Options("/*", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		authHandler := handlers.NewAuthHandler(rt.container.AuthService, rt.logger)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
			r.Post("/confirm", authHandler.Confirm)
			r.Post("/resend", authHandler.Resend)
			r.Get("/verify", authHandler.Verify)
		})

		// Uploads and the image calendar fall back to the shared account
		// when no valid token is presented.
		imagesHandler := handlers.NewImagesHandler(rt.container.ImageService, rt.logger)
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(rt.container.AuthService, rt.logger))
			r.Post("/upload", imagesHandler.Upload)
			r.Get("/images", imagesHandler.List)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(rt.container.AuthService, rt.logger))

			preferencesHandler := handlers.NewPreferencesHandler(rt.container.PreferenceService, rt.logger)
			r.Get("/preferences", preferencesHandler.Get)
			r.Put("/preferences", preferencesHandler.Update)

			videoHandler := handlers.NewVideoHandler(rt.container.VideoService, rt.logger)
			r.Post("/video/render", videoHandler.Render)
			r.Get("/video/status/{renderID}", videoHandler.Status)
		})

		familyHandler := handlers.NewFamilyHandler(rt.container.FamilyService, rt.logger)
		r.Route("/familyTree", func(r chi.Router) {
			r.Get("/", familyHandler.List)
			r.Post("/", familyHandler.Create)
			r.Get("/children/{id}", familyHandler.Children)
			r.Get("/parents/{id}", familyHandler.Parents)
			r.Get("/{id}", familyHandler.Get)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
