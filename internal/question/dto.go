package question

import (
	"fmt"

	"github.com/saulo-duarte/trivia-lambda/internal/apperr"
	"github.com/saulo-duarte/trivia-lambda/internal/category"
	util "github.com/saulo-duarte/trivia-lambda/internal/utils"
)

type CreateQuestionDTO struct {
	Question   *string       `json:"question"`
	Answer     *string       `json:"answer"`
	Difficulty *util.FlexInt `json:"difficulty"`
	Category   *util.FlexInt `json:"category"`
}

type SearchQuestionsDTO struct {
	SearchTerm *string `json:"searchTerm"`
}

type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

// QuestionPage is the body shared by every endpoint returning a page of questions.
type QuestionPage struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *int               `json:"current_category"`
}

type QuestionListResponse struct {
	QuestionPage
	Categories []category.CategoryResponse `json:"categories"`
}

type CreateQuestionResponse struct {
	Success bool             `json:"success"`
	Created QuestionResponse `json:"created"`
}

type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

// ToEntity validates the payload and builds the question to insert. Every
// field must be present and the text fields must not be empty.
func (d CreateQuestionDTO) ToEntity() (*Question, error) {
	switch {
	case d.Question == nil || *d.Question == "":
		return nil, fmt.Errorf("question is required: %w", apperr.ErrUnprocessable)
	case d.Answer == nil || *d.Answer == "":
		return nil, fmt.Errorf("answer is required: %w", apperr.ErrUnprocessable)
	case d.Difficulty == nil:
		return nil, fmt.Errorf("difficulty is required: %w", apperr.ErrUnprocessable)
	case d.Category == nil:
		return nil, fmt.Errorf("category is required: %w", apperr.ErrUnprocessable)
	}

	return &Question{
		Question:   *d.Question,
		Answer:     *d.Answer,
		Difficulty: d.Difficulty.Int(),
		Category:   d.Category.Int(),
	}, nil
}

func ToResponse(q *Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

func ToResponses(questions []*Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, ToResponse(q))
	}
	return responses
}
