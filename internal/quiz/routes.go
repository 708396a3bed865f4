package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateQuiz)
	r.Get("/current", h.GetQuiz)
	r.Get("/current/score", h.GetScore)
	r.Post("/current/questions/{index}/answer", h.SubmitAnswer)
	r.Get("/current/questions/{index}", h.GetQuestionStatus)
	return r
}
