package category

import (
	"net/http"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

type Handler struct {
	service CategoryService
}

func NewHandler(s CategoryService) *Handler {
	return &Handler{service: s}
}

// ListCategories godoc
// @Summary  List every category
// @Tags     categories
// @Produce  json
// @Success  200 {object} CategoryListResponse
// @Router   /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListCategories(r.Context())
	if err != nil {
		config.WriteError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
