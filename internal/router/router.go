package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"

	"github.com/saulo-duarte/trivia-lambda/internal/category"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	_ "github.com/saulo-duarte/trivia-lambda/internal/docs"
	"github.com/saulo-duarte/trivia-lambda/internal/generator"
	"github.com/saulo-duarte/trivia-lambda/internal/middlewares"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"github.com/saulo-duarte/trivia-lambda/internal/quiz"
)

type RouterConfig struct {
	DB               *gorm.DB
	CategoryHandler  *category.Handler
	QuestionHandler  *question.Handler
	QuizHandler      *quiz.Handler
	GeneratorHandler *generator.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusMethodNotAllowed)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", health(cfg.DB))

	r.Mount("/categories", category.Routes(cfg.CategoryHandler))
	r.Get("/categories/{categoryId}/questions", cfg.QuestionHandler.ListByCategory)

	r.Route("/questions", func(r chi.Router) {
		r.Mount("/generate", generator.Routes(cfg.GeneratorHandler))
		r.Mount("/", question.Routes(cfg.QuestionHandler))
	})

	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	return r
}

func health(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			config.WriteError(w, r, err)
			return
		}

		config.JSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
