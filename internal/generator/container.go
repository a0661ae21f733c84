package generator

import (
	"context"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
)

type GeneratorContainer struct {
	Handler *Handler
}

func NewGeneratorContainer(questions question.QuestionService) *GeneratorContainer {
	ctx := context.Background()

	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Question generator disabled")
		provider = nil
	}

	service := NewService(provider, questions)
	handler := NewHandler(service)

	return &GeneratorContainer{
		Handler: handler,
	}
}
