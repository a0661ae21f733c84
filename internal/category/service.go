package category

import (
	"context"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

type CategoryService interface {
	ListCategories(ctx context.Context) (*CategoryListResponse, error)
}

type categoryService struct {
	repo CategoryRepository
}

func NewService(repo CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) (*CategoryListResponse, error) {
	log := config.WithContext(ctx)

	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, err
	}

	responses := ToResponses(categories)
	return &CategoryListResponse{
		Success:         true,
		Categories:      responses,
		TotalCategories: len(responses),
	}, nil
}
