// Package seed loads the initial categories and questions from a YAML file.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/saulo-duarte/trivia-lambda/internal/category"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/question"
	util "github.com/saulo-duarte/trivia-lambda/internal/utils"
	"go.yaml.in/yaml/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Data struct {
	Categories []CategorySeed `yaml:"categories"`
	Questions  []QuestionSeed `yaml:"questions"`
}

type CategorySeed struct {
	ID   uint   `yaml:"id"`
	Type string `yaml:"type"`
}

type QuestionSeed struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Difficulty int    `yaml:"difficulty"`
	Category   int    `yaml:"category"`
}

type Result struct {
	Categories int
	Questions  int
}

func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// Run stores the seed data in one transaction. Categories already present
// are kept as they are; questions are only inserted into an empty table so
// running the seeder twice does not duplicate them.
func Run(ctx context.Context, db *gorm.DB, data *Data) (*Result, error) {
	log := config.WithContext(ctx)

	categories := make([]category.Category, 0, len(data.Categories))
	for _, c := range data.Categories {
		if c.ID == 0 || c.Type == "" {
			return nil, fmt.Errorf("category %+v needs an id and a type", c)
		}
		categories = append(categories, category.Category{ID: c.ID, Type: c.Type})
	}

	questions := make([]*question.Question, 0, len(data.Questions))
	for i, q := range data.Questions {
		difficulty, cat := util.FlexInt(q.Difficulty), util.FlexInt(q.Category)
		entity, err := question.CreateQuestionDTO{
			Question:   &q.Question,
			Answer:     &q.Answer,
			Difficulty: &difficulty,
			Category:   &cat,
		}.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("question #%d: %w", i+1, err)
		}
		questions = append(questions, entity)
	}

	result := &Result{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(categories) > 0 {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories)
			if res.Error != nil {
				return res.Error
			}
			result.Categories = int(res.RowsAffected)
		}

		var existing int64
		if err := tx.Model(&question.Question{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			log.WithField("existing", existing).Info("Questions already seeded, skipping")
			return nil
		}

		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		result.Questions = len(questions)
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Seeding failed")
		return nil, err
	}

	log.WithField("categories", result.Categories).
		WithField("questions", result.Questions).
		Info("Seed completed")
	return result, nil
}
