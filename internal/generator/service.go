package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/trivia-lambda/internal/apperr"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	util "github.com/saulo-duarte/trivia-lambda/internal/utils"
	"github.com/sirupsen/logrus"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type service struct {
	provider  Provider
	questions question.QuestionService
}

// NewService accepts a nil provider; Generate then reports the generator as unavailable.
func NewService(provider Provider, questions question.QuestionService) Service {
	return &service{provider: provider, questions: questions}
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	if s.provider == nil {
		log.Warn("Question generation requested without a configured model")
		return nil, fmt.Errorf("generator: %w", apperr.ErrUnavailable)
	}

	req = normalize(req)
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Category <= 0 || req.Topic == "" {
		log.WithField("category", req.Category).Warn("Invalid generation request")
		return nil, fmt.Errorf("category and topic are required: %w", apperr.ErrUnprocessable)
	}

	log = log.WithFields(logrus.Fields{
		"category":   req.Category,
		"difficulty": req.Difficulty,
		"amount":     req.Amount,
	})

	generated, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		return nil, err
	}

	difficulty := util.FlexInt(req.Difficulty)
	category := util.FlexInt(req.Category)

	response := &GenerateResponse{Success: true, Created: []question.QuestionResponse{}}
	for i, g := range generated {
		if len(response.Created) == req.Amount {
			break
		}

		text, answer := strings.TrimSpace(g.Question), strings.TrimSpace(g.Answer)
		created, err := s.questions.CreateQuestion(ctx, question.CreateQuestionDTO{
			Question:   &text,
			Answer:     &answer,
			Difficulty: &difficulty,
			Category:   &category,
		})
		if errors.Is(err, apperr.ErrUnprocessable) {
			log.WithField("index", i).Warn("Skipping invalid generated question")
			continue
		}
		if err != nil {
			return nil, err
		}
		response.Created = append(response.Created, *created)
	}

	response.TotalCreated = len(response.Created)
	log.Infof("[GENERATOR] Stored %d generated questions", response.TotalCreated)
	return response, nil
}
