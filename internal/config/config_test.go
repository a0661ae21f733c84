package config_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/trivia-lambda/internal/apperr"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "")
		t.Setenv("DATABASE_DSN", "")
		t.Setenv("PORT", "")
		t.Setenv("AUTO_MIGRATE", "")

		s := config.Load()
		assert.Equal(t, "postgres", s.DatabaseDriver)
		assert.Equal(t, "8080", s.Port)
		assert.Empty(t, s.DatabaseDSN)
		assert.False(t, s.AutoMigrate)
	})

	t.Run("FromEnvironment", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "mysql")
		t.Setenv("DATABASE_DSN", "user:pass@tcp(localhost:3306)/trivia")
		t.Setenv("PORT", "9000")
		t.Setenv("AUTO_MIGRATE", "TRUE")

		s := config.Load()
		assert.Equal(t, "mysql", s.DatabaseDriver)
		assert.Equal(t, "user:pass@tcp(localhost:3306)/trivia", s.DatabaseDSN)
		assert.Equal(t, "9000", s.Port)
		assert.True(t, s.AutoMigrate)
	})
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TRIVIA_TEST_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TRIVIA_TEST_VALUE") })

	config.LoadEnv(path)
	assert.Equal(t, "from-file", os.Getenv("TRIVIA_TEST_VALUE"))

	// a missing file is not an error worth failing startup for
	config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
}

func TestOpen(t *testing.T) {
	_, err := config.Open("postgres", "")
	assert.ErrorIs(t, err, config.ErrMissingDSN)

	_, err = config.Open("oracle", "dsn")
	assert.Error(t, err)

	db, err := config.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	sqlDB.Close()
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{fmt.Errorf("question 7: %w", apperr.ErrNotFound), http.StatusNotFound, "resource not found"},
		{apperr.ErrUnprocessable, http.StatusUnprocessableEntity, "unprocessable"},
		{errors.New("pq: relation \"questions\" does not exist"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		config.WriteError(rec, req, tc.err)

		assert.Equal(t, tc.status, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body config.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, tc.status, body.Error)
		assert.Equal(t, tc.message, body.Message)
	}
}
