package quiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/trivia-lambda/internal/apperr"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"github.com/sirupsen/logrus"
)

type QuizService interface {
	NextQuestion(ctx context.Context, dto NextQuestionDTO) (*NextQuestionResponse, error)
}

type quizService struct {
	repo QuizRepository
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

// NextQuestion picks a question of the quiz category that was not asked yet.
// Running out of questions is the normal end of a quiz, not an error.
func (s *quizService) NextQuestion(ctx context.Context, dto NextQuestionDTO) (*NextQuestionResponse, error) {
	log := config.WithContext(ctx)

	if dto.QuizCategory == nil || dto.QuizCategory.ID == nil {
		log.Warn("Quiz request without quiz_category")
		return nil, fmt.Errorf("quiz_category is required: %w", apperr.ErrUnprocessable)
	}

	categoryID := dto.QuizCategory.ID.Int()
	log = log.WithFields(logrus.Fields{
		"category_id": categoryID,
		"previous":    len(dto.PreviousQuestions),
	})

	q, err := s.repo.FirstUnseen(ctx, categoryID, dto.PreviousQuestions)
	if err != nil {
		log.WithError(err).Error("Failed to select quiz question")
		return nil, err
	}

	response := &NextQuestionResponse{Success: true}
	if q == nil {
		log.Info("No questions left for quiz")
		return response, nil
	}

	formatted := question.ToResponse(q)
	response.Question = &formatted
	return response, nil
}
