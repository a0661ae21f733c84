package question

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/trivia-lambda/internal/apperr"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/pagination"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

// v1 clients post searches to the create endpoint, under either key.
type createOrSearchRequest struct {
	SearchQuestionsDTO
	CreateQuestionDTO
	LegacySearchTerm *string `json:"search_term"`
}

// ListQuestions godoc
// @Summary  List questions page by page, with every category
// @Tags     questions
// @Produce  json
// @Param    page query int false "1-based page number"
// @Success  200 {object} QuestionListResponse
// @Failure  404 {object} config.ErrorResponse
// @Failure  422 {object} config.ErrorResponse
// @Router   /questions [get]
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListQuestions(r.Context(), pagination.PageFromRequest(r))
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

// ListByCategory godoc
// @Summary  List the questions of one category
// @Tags     questions
// @Produce  json
// @Param    categoryId path int true "Category ID"
// @Param    page query int false "1-based page number"
// @Success  200 {object} QuestionPage
// @Failure  404 {object} config.ErrorResponse
// @Router   /categories/{categoryId}/questions [get]
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryId"))
	if err != nil {
		config.Error(w, http.StatusNotFound)
		return
	}

	response, err := h.service.ListByCategory(r.Context(), categoryID, pagination.PageFromRequest(r))
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

// CreateQuestion godoc
// @Summary  Create a question
// @Tags     questions
// @Accept   json
// @Produce  json
// @Param    request body CreateQuestionDTO true "Question data"
// @Success  200 {object} CreateQuestionResponse
// @Failure  422 {object} config.ErrorResponse
// @Router   /questions [post]
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req createOrSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for question creation")
		config.Error(w, http.StatusUnprocessableEntity)
		return
	}

	if term := req.SearchTerm; term != nil || req.LegacySearchTerm != nil {
		if term == nil {
			term = req.LegacySearchTerm
		}
		log.Debug("Search sent to create endpoint, delegating")
		h.search(w, r, *term)
		return
	}

	created, err := h.service.CreateQuestion(r.Context(), req.CreateQuestionDTO)
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, CreateQuestionResponse{
		Success: true,
		Created: *created,
	})
}

// SearchQuestions godoc
// @Summary  Case-insensitive search on question text
// @Tags     questions
// @Accept   json
// @Produce  json
// @Param    page query int false "1-based page number"
// @Param    request body SearchQuestionsDTO true "Search term"
// @Success  200 {object} QuestionPage
// @Failure  404 {object} config.ErrorResponse
// @Failure  422 {object} config.ErrorResponse
// @Router   /questions/search [post]
func (h *Handler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SearchQuestionsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for question search")
		config.Error(w, http.StatusUnprocessableEntity)
		return
	}
	if req.SearchTerm == nil {
		config.WriteError(w, r, fmt.Errorf("searchTerm is required: %w", apperr.ErrUnprocessable))
		return
	}

	h.search(w, r, *req.SearchTerm)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, term string) {
	response, err := h.service.SearchQuestions(r.Context(), term, pagination.PageFromRequest(r))
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

// DeleteQuestion godoc
// @Summary  Delete a question
// @Tags     questions
// @Produce  json
// @Param    id path int true "Question ID"
// @Success  200 {object} DeleteQuestionResponse
// @Failure  404 {object} config.ErrorResponse
// @Router   /questions/{id} [delete]
func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		config.Error(w, http.StatusNotFound)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), uint(id)); err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, DeleteQuestionResponse{
		Success: true,
		Deleted: uint(id),
	})
}
