package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

// Recoverer turns a panic into the 500 error envelope and logs the stack.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			config.WithContext(r.Context()).
				WithField("stack", string(debug.Stack())).
				Errorf("Recovered from panic: %v", rec)
			config.Error(w, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
