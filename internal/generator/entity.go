package generator

import "github.com/saulo-duarte/trivia-lambda/internal/question"

type GeneratedQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GenerateRequest struct {
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
	Amount     int    `json:"amount"`
	Topic      string `json:"topic"`
}

type GenerateResponse struct {
	Success      bool                        `json:"success"`
	Created      []question.QuestionResponse `json:"created"`
	TotalCreated int                         `json:"total_created"`
}
