package question

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/trivia-lambda/internal/apperr"
	"github.com/saulo-duarte/trivia-lambda/internal/category"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/pagination"
	"github.com/sirupsen/logrus"
)

type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*QuestionListResponse, error)
	ListByCategory(ctx context.Context, categoryID int, page int) (*QuestionPage, error)
	SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error)
	CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type questionService struct {
	repo         QuestionRepository
	categoryRepo category.CategoryRepository
}

func NewService(repo QuestionRepository, categoryRepo category.CategoryRepository) QuestionService {
	return &questionService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

// buildPage paginates an ordered result set into the shared page body.
func buildPage(page int, questions []*Question, currentCategory *int) (*QuestionPage, error) {
	paginated, err := pagination.Paginate(page, questions)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Success:         true,
		Questions:       ToResponses(paginated),
		TotalQuestions:  len(questions),
		CurrentCategory: currentCategory,
	}, nil
}

func (s *questionService) ListQuestions(ctx context.Context, page int) (*QuestionListResponse, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, err
	}

	result, err := buildPage(page, questions, nil)
	if err != nil {
		log.WithField("page", page).Warn("Invalid page requested")
		return nil, err
	}
	if len(result.Questions) == 0 {
		log.WithFields(logrus.Fields{
			"page":  page,
			"total": len(questions),
		}).Warn("Requested question page is empty")
		return nil, fmt.Errorf("questions page %d: %w", page, apperr.ErrNotFound)
	}

	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, err
	}

	return &QuestionListResponse{
		QuestionPage: *result,
		Categories:   category.ToResponses(categories),
	}, nil
}

func (s *questionService) ListByCategory(ctx context.Context, categoryID int, page int) (*QuestionPage, error) {
	log := config.WithContext(ctx).WithField("category_id", categoryID)

	questions, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to list questions by category")
		return nil, err
	}

	result, err := buildPage(page, questions, &categoryID)
	if err != nil {
		log.WithField("page", page).Warn("Invalid page requested")
		return nil, err
	}
	if len(result.Questions) == 0 {
		log.WithField("page", page).Warn("No questions on requested category page")
		return nil, fmt.Errorf("category %d page %d: %w", categoryID, page, apperr.ErrNotFound)
	}

	return result, nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	log := config.WithContext(ctx).WithField("search_term", term)

	questions, err := s.repo.Search(ctx, term)
	if err != nil {
		log.WithError(err).Error("Failed to search questions")
		return nil, err
	}

	result, err := buildPage(page, questions, nil)
	if err != nil {
		log.WithField("page", page).Warn("Invalid page requested")
		return nil, err
	}
	// no matches is a valid answer; only a page past existing matches is missing
	if len(questions) > 0 && len(result.Questions) == 0 {
		log.WithField("page", page).Warn("Search page beyond matches")
		return nil, fmt.Errorf("search page %d: %w", page, apperr.ErrNotFound)
	}

	return result, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*QuestionResponse, error) {
	log := config.WithContext(ctx)

	q, err := dto.ToEntity()
	if err != nil {
		log.WithError(err).Warn("Invalid question payload")
		return nil, err
	}

	if err := s.repo.Create(ctx, q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}

	log.WithField("question_id", q.ID).Info("Question created successfully")
	response := ToResponse(q)
	return &response, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	log := config.WithContext(ctx).WithField("question_id", id)

	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to find question")
		return err
	}
	if q == nil {
		log.Warn("Question not found for deletion")
		return fmt.Errorf("question %d: %w", id, apperr.ErrNotFound)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete question")
		return err
	}

	log.Info("Question deleted successfully")
	return nil
}
