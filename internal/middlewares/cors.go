package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

var corsHandler = cors.Handler(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"Content-Type"},
	MaxAge:         300,
})

func CorsMiddleware(next http.Handler) http.Handler {
	return corsHandler(next)
}
