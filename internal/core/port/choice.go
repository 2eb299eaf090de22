package port

import (
	"context"

	"pollsapp/internal/core/domain"
)

type ChoiceRepository interface {
	GetAll(ctx context.Context) ([]domain.Choice, error)
	GetByID(ctx context.Context, id int64) (domain.Choice, error)
	GetByQuestionID(ctx context.Context, questionID int64) ([]domain.Choice, error)
	Create(ctx context.Context, choice domain.Choice) (domain.Choice, error)
	Update(ctx context.Context, choice domain.Choice) (domain.Choice, error)
	DeleteByID(ctx context.Context, id int64) error
}

type ChoiceService interface {
	Create(ctx context.Context, choice domain.Choice) (domain.Choice, error)
	Update(ctx context.Context, id int64, choiceText string, votes int) (domain.Choice, error)
	Delete(ctx context.Context, id int64) (domain.Choice, error)
}
