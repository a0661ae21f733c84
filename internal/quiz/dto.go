package quiz

import (
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	util "github.com/saulo-duarte/trivia-lambda/internal/utils"
)

// AllCategories is the quiz category id the web client sends for "All".
const AllCategories = 0

type QuizCategoryDTO struct {
	ID   *util.FlexInt `json:"id"`
	Type string        `json:"type"`
}

type NextQuestionDTO struct {
	PreviousQuestions []uint           `json:"previous_questions"`
	QuizCategory      *QuizCategoryDTO `json:"quiz_category"`
}

type NextQuestionResponse struct {
	Success  bool                       `json:"success"`
	Question *question.QuestionResponse `json:"question"`
}
