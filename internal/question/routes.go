package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListQuestions)
	r.Post("/", h.CreateQuestion)
	r.Post("/search", h.SearchQuestions)
	r.Delete("/{id}", h.DeleteQuestion)
	return r
}
