package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "safik-ai/site/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
// staticDir holds the pre-built marketing site; it is served for every path
// the API does not claim.
func NewRouter(chatHandler *ChatHandler, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The exported pages are often served from a CDN on another origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe for container orchestration.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {

		// Plain JSON routes get a request timeout. Submitting with wait=true
		// is bounded by the same timeout.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/suggestions", chatHandler.GetSuggestions)

			r.Post("/sessions", chatHandler.CreateSession)
			r.Get("/sessions/{sessionID}", chatHandler.GetSession)
			r.Delete("/sessions/{sessionID}", chatHandler.DeleteSession)

			r.Post("/sessions/{sessionID}/messages", chatHandler.SubmitMessage)
			r.Delete("/sessions/{sessionID}/messages", chatHandler.ClearMessages)
			r.Put("/sessions/{sessionID}/draft", chatHandler.UpdateDraft)
		})

		// Long-lived streaming routes must NOT have a timeout.
		r.Group(func(r chi.Router) {
			r.Get("/sessions/{sessionID}/events", chatHandler.HandleSessionEvents)
		})
	})

	// --- Frontend File Server ---
	// Serves the exported marketing site. In production a CDN or Nginx
	// usually fronts this, but it keeps single-binary deployments simple.
	fileServer := http.FileServer(http.Dir(staticDir))
	r.Handle("/*", fileServer)

	return r
}
