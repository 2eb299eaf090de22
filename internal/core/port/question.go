package port

import (
	"context"

	"pollsapp/internal/core/domain"
)

type QuestionRepository interface {
	GetAll(ctx context.Context) ([]domain.Question, error)
	GetByID(ctx context.Context, id int64) (domain.Question, error)
	Create(ctx context.Context, question domain.Question) (domain.Question, error)
	Update(ctx context.Context, question domain.Question) (domain.Question, error)
	DeleteByID(ctx context.Context, id int64) error
}

type QuestionService interface {
	List(ctx context.Context) ([]domain.QuestionDetail, error)
	Get(ctx context.Context, id int64) (domain.QuestionDetail, error)
	Create(ctx context.Context, questionText string) (domain.Question, error)
	UpdateText(ctx context.Context, id int64, questionText string) (domain.Question, error)
	Delete(ctx context.Context, id int64) (domain.Question, error)
}
