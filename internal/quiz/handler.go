package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

// NextQuestion godoc
// @Summary  Next unseen question of a quiz
// @Tags     quizzes
// @Accept   json
// @Produce  json
// @Param    request body NextQuestionDTO true "Quiz category and questions already asked"
// @Success  200 {object} NextQuestionResponse
// @Failure  422 {object} config.ErrorResponse
// @Router   /quizzes [post]
func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto NextQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz")
		config.Error(w, http.StatusUnprocessableEntity)
		return
	}

	response, err := h.service.NextQuestion(r.Context(), dto)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
