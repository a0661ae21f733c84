package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCondition(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		query, pattern := searchCondition("postgres", "Élan")
		assert.Equal(t, "question ILIKE ?", query)
		assert.Equal(t, "%Élan%", pattern)
	})

	for _, dialect := range []string{"sqlite", "mysql"} {
		t.Run(dialect, func(t *testing.T) {
			query, pattern := searchCondition(dialect, "PeniCillin")
			assert.Equal(t, "LOWER(question) LIKE ?", query)
			assert.Equal(t, "%penicillin%", pattern)
		})
	}
}
