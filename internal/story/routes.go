package story

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateStory)
	r.Get("/", h.GetStory)
	r.Post("/illustration", h.Illustrate)
	r.Post("/narration", h.Narrate)
	return r
}
