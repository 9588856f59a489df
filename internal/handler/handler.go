// Package handler exposes the core's read projections over HTTP.
// Presentation consumes these endpoints and never derives coverage,
// contexts, or responsibility independently.
package handler

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/db"
)

type Handler struct {
	store  db.StateStore
	logger *zap.Logger

	Mux *chi.Mux
}

func NewHandler(store db.StateStore, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
		Mux:    chi.NewRouter(),
	}
}

// RegisterRoutes wires the read-only query surface. All endpoints are
// pure projections over the stored state.
func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestLogger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Get("/coverage", h.getCoverage)
		r.Get("/deficit", h.getDeficit)
		r.Get("/context", h.getContexts)
		r.Get("/responsibility", h.getResponsibility)
		r.Get("/people", h.getPeople)
		r.Get("/audit", h.getAuditLog)
	})
}
