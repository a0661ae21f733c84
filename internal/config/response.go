package config

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/trivia-lambda/internal/apperr"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		Logger.WithError(err).Error("Failed to encode response")
	}
}

// Error writes the uniform error envelope for status.
func Error(w http.ResponseWriter, status int) {
	JSON(w, status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: apperr.Message(status),
	})
}

// WriteError translates a service error into the error envelope. Server
// errors are logged with their detail, which is never sent to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		WithContext(r.Context()).WithError(err).Error("Request failed")
	}
	Error(w, status)
}
