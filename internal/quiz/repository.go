package quiz

import (
	"context"

	"github.com/saulo-duarte/trivia-lambda/internal/question"
	"gorm.io/gorm"
)

type QuizRepository interface {
	// FirstUnseen returns the lowest-id question of the category whose id is
	// not in exclude, or nil when none is left.
	FirstUnseen(ctx context.Context, categoryID int, exclude []uint) (*question.Question, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) FirstUnseen(ctx context.Context, categoryID int, exclude []uint) (*question.Question, error) {
	tx := r.db.WithContext(ctx).Order("id ASC")
	if categoryID != AllCategories {
		tx = tx.Where("category = ?", categoryID)
	}
	if len(exclude) > 0 {
		tx = tx.Where("id NOT IN ?", exclude)
	}

	var questions []*question.Question
	if err := tx.Limit(1).Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return questions[0], nil
}
