package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

var ErrEmptyModelResponse = errors.New("empty model response")

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]GeneratedQuestion, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds a client from GEMINI_API_KEY or GOOGLE_API_KEY.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]GeneratedQuestion, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[GENERATOR] Raw Gemini response:\n%s", raw)

	return parseQuestions(raw)
}

// parseQuestions decodes the model output, tolerating a markdown code fence around the JSON.
func parseQuestions(raw string) ([]GeneratedQuestion, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return nil, ErrEmptyModelResponse
	}

	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(strings.Trim(clean, "`"))

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("decode model JSON: %w", err)
	}
	return questions, nil
}
