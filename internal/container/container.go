package container

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/trivia-lambda/internal/category"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/generator"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"github.com/saulo-duarte/trivia-lambda/internal/quiz"
	"github.com/saulo-duarte/trivia-lambda/internal/router"
)

type Container struct {
	DB                 *gorm.DB
	CategoryContainer  *category.CategoryContainer
	QuestionContainer  *question.QuestionContainer
	QuizContainer      *quiz.QuizContainer
	GeneratorContainer *generator.GeneratorContainer
}

// New connects to the database named by the environment and wires every
// module. Logging is configured by the caller.
func New(ctx context.Context) (*Container, error) {
	settings := config.Load()

	if err := config.Connect(ctx, settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if settings.AutoMigrate {
		if err := Migrate(config.DB); err != nil {
			return nil, err
		}
	}

	return Build(config.DB), nil
}

func Build(db *gorm.DB) *Container {
	categoryContainer := category.NewCategoryContainer(db)
	questionContainer := question.NewQuestionContainer(db, categoryContainer.Repo)
	quizContainer := quiz.NewQuizContainer(db)
	generatorContainer := generator.NewGeneratorContainer(questionContainer.Service)

	return &Container{
		DB:                 db,
		CategoryContainer:  categoryContainer,
		QuestionContainer:  questionContainer,
		QuizContainer:      quizContainer,
		GeneratorContainer: generatorContainer,
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		DB:               c.DB,
		CategoryHandler:  c.CategoryContainer.Handler,
		QuestionHandler:  c.QuestionContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		GeneratorHandler: c.GeneratorContainer.Handler,
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&category.Category{}, &question.Question{}); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	config.Logger.Info("Database migrated")
	return nil
}
