package generator

import "fmt"

const (
	defaultAmount = 3
	maxAmount     = 10
	minDifficulty = 1
	maxDifficulty = 5
)

const systemPrompt = `
You write questions for a trivia game played in teams.

Rules:
1. Each question has exactly one short, unambiguous answer (a name, a number, a word or a short phrase).
2. Never reveal the answer in the question text.
3. Difficulty goes from 1 (common knowledge) to 5 (specialist knowledge).
4. Do not repeat questions inside one answer.

Answer with pure, valid JSON and nothing else, in this format:

[
  {"question": "<question text ending with a question mark>", "answer": "<short answer>"}
]
`

// normalize clamps the amount and difficulty into the ranges the prompt supports.
func normalize(req GenerateRequest) GenerateRequest {
	if req.Amount <= 0 {
		req.Amount = defaultAmount
	}
	if req.Amount > maxAmount {
		req.Amount = maxAmount
	}
	if req.Difficulty < minDifficulty {
		req.Difficulty = minDifficulty
	}
	if req.Difficulty > maxDifficulty {
		req.Difficulty = maxDifficulty
	}
	return req
}

func BuildUserPrompt(req GenerateRequest) string {
	return fmt.Sprintf(
		"Write %d trivia questions about %q with difficulty %d out of %d.",
		req.Amount, req.Topic, req.Difficulty, maxDifficulty,
	)
}
