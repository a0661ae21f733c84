package generator

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions godoc
// @Summary  Generate and store trivia questions with Gemini
// @Tags     questions
// @Accept   json
// @Produce  json
// @Param    request body GenerateRequest true "Category, topic, difficulty and amount"
// @Success  201 {object} GenerateResponse
// @Failure  422 {object} config.ErrorResponse
// @Failure  503 {object} config.ErrorResponse
// @Router   /questions/generate [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for question generation")
		config.Error(w, http.StatusUnprocessableEntity)
		return
	}

	response, err := h.service.Generate(r.Context(), req)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}
