package quiz_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"github.com/saulo-duarte/trivia-lambda/internal/quiz"
	"github.com/saulo-duarte/trivia-lambda/internal/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seed(t *testing.T, db *gorm.DB, categoryID, n int) []question.Question {
	t.Helper()

	questions := make([]question.Question, n)
	for i := range questions {
		questions[i] = question.Question{
			Question:   fmt.Sprintf("Question %d of category %d?", i+1, categoryID),
			Answer:     "yes",
			Difficulty: 1,
			Category:   categoryID,
		}
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

func TestRepositoryFirstUnseen(t *testing.T) {
	db := storetest.Open(t, &question.Question{})
	repo := quiz.NewRepository(db)
	ctx := context.Background()

	science := seed(t, db, 1, 3)
	art := seed(t, db, 2, 2)

	t.Run("LowestIDFirst", func(t *testing.T) {
		q, err := repo.FirstUnseen(ctx, 1, nil)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, science[0].ID, q.ID)
	})

	t.Run("SkipsPrevious", func(t *testing.T) {
		q, err := repo.FirstUnseen(ctx, 1, []uint{science[0].ID, science[2].ID})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, science[1].ID, q.ID)
	})

	t.Run("Exhausted", func(t *testing.T) {
		q, err := repo.FirstUnseen(ctx, 2, []uint{art[0].ID, art[1].ID})
		require.NoError(t, err)
		assert.Nil(t, q)
	})

	t.Run("AllCategories", func(t *testing.T) {
		q, err := repo.FirstUnseen(ctx, quiz.AllCategories, []uint{science[0].ID, science[1].ID, science[2].ID})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, art[0].ID, q.ID)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		q, err := repo.FirstUnseen(ctx, 99, nil)
		require.NoError(t, err)
		assert.Nil(t, q)
	})
}

func postQuiz(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNextQuestionHandler(t *testing.T) {
	db := storetest.Open(t, &question.Question{})
	stored := seed(t, db, 1, 3)
	seed(t, db, 2, 1)

	h := quiz.Routes(quiz.NewQuizContainer(db).Handler)

	t.Run("NeverRepeatsPrevious", func(t *testing.T) {
		var previous []uint
		for range stored {
			payload, err := json.Marshal(map[string]interface{}{
				"previous_questions": previous,
				"quiz_category":      map[string]interface{}{"id": 1, "type": "Science"},
			})
			require.NoError(t, err)

			rec := postQuiz(t, h, string(payload))
			require.Equal(t, http.StatusOK, rec.Code)

			var body quiz.NextQuestionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.True(t, body.Success)
			require.NotNil(t, body.Question)
			assert.NotContains(t, previous, body.Question.ID)
			assert.Equal(t, 1, body.Question.Category)

			previous = append(previous, body.Question.ID)
		}
		assert.Len(t, previous, len(stored))
	})

	t.Run("Exhausted", func(t *testing.T) {
		body := fmt.Sprintf(`{"previous_questions": [%d, %d, %d], "quiz_category": {"id": "1", "type": "Science"}}`,
			stored[0].ID, stored[1].ID, stored[2].ID)
		rec := postQuiz(t, h, body)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success": true, "question": null}`, rec.Body.String())
	})

	t.Run("PreviousDefaultsToEmpty", func(t *testing.T) {
		rec := postQuiz(t, h, `{"quiz_category": {"id": 2}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body quiz.NextQuestionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Question)
		assert.Equal(t, 2, body.Question.Category)
	})

	unprocessable := map[string]string{
		"EmptyBody":       ``,
		"MissingCategory": `{"previous_questions": []}`,
		"NullCategory":    `{"quiz_category": null}`,
		"MissingID":       `{"quiz_category": {"type": "Science"}}`,
		"BadID":           `{"quiz_category": {"id": "science"}}`,
	}
	for name, payload := range unprocessable {
		t.Run(name, func(t *testing.T) {
			rec := postQuiz(t, h, payload)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.JSONEq(t, `{"success": false, "error": 422, "message": "unprocessable"}`, rec.Body.String())
		})
	}
}
