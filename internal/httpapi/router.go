// Package httpapi exposes advisor sessions and the action surface over HTTP.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/service"
)

// NewRouter wires the session routes. A non-nil logger also enables
// per-request access logging.
func NewRouter(sessions service.AdvisorSessionService, cat *catalog.Catalog, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if logger != nil {
		r.Use(middleware.Logger)
	} else {
		logger = slog.New(slog.DiscardHandler)
	}
	r.Use(middleware.Recoverer)

	h := &Handler{sessions: sessions, catalog: cat, logger: logger}
	r.Route("/api", h.RegisterRoutes)
	return r
}
