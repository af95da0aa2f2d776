package router

import (
	"encoding/json"
	"net/http"

	"order-desk/internal/handler"
	"order-desk/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(orderHandler *handler.OrderHandler, allowedOrigins []string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(allowedOrigins))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Welcome to the API"))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Post("/orders", orderHandler.Create)
	r.Get("/orders", orderHandler.List)
	r.Get("/orders/{id}", orderHandler.GetByID)
	r.Patch("/orders/update/{id}", orderHandler.Update)
	r.Delete("/orders/delete/{id}", orderHandler.Delete)

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	return r
}

// routeNotFound answers any unmatched route or method with the JSON shape
// clients already rely on.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Route not found",
		"path":    r.URL.Path,
		"method":  r.Method,
	})
}
