package chat

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers chat routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/chat", func(r chi.Router) {
		r.Post("/render", h.RenderMessage)
		r.Post("/export", h.ExportMessage)
		r.Get("/examples", h.ExamplePrompts)
	})
}
