package reference

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers document reference routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/doc-references", h.ListReferences)
	r.Post("/doc-references/refresh", h.RefreshReferences)
}
