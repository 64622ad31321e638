package relay

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.Chat)
		r.Get("/generate-image", h.GenerateImage)
		r.Get("/health", h.Health)
		r.Get("/docs", h.Docs)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/chat/completions", h.ChatCompletions)
		r.Get("/models", h.Models)
	})
}
