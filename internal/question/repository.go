package question

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	GetByID(ctx context.Context, id uint) (*Question, error)
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]*Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]*Question, error)
	Search(ctx context.Context, term string) ([]*Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *questionRepository) GetByID(ctx context.Context, id uint) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Question{}, "id = ?", id).Error
}

func (r *questionRepository) ListAll(ctx context.Context) ([]*Question, error) {
	var questions []*Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListByCategory(ctx context.Context, categoryID int) ([]*Question, error) {
	var questions []*Question
	if err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// searchCondition builds a case-insensitive substring match. Postgres folds
// case with ILIKE; elsewhere LOWER is used, which SQLite applies to ASCII only.
func searchCondition(dialect, term string) (string, string) {
	if dialect == "postgres" {
		return "question ILIKE ?", "%" + term + "%"
	}
	return "LOWER(question) LIKE ?", "%" + strings.ToLower(term) + "%"
}

func (r *questionRepository) Search(ctx context.Context, term string) ([]*Question, error) {
	query, pattern := searchCondition(r.db.Dialector.Name(), term)

	var questions []*Question
	if err := r.db.WithContext(ctx).
		Where(query, pattern).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
