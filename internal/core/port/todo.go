package port

import (
	"context"

	"pollsapp/internal/core/domain"
)

type TodoRepository interface {
	GetAll(ctx context.Context) ([]domain.Todo, error)
	GetByID(ctx context.Context, id int64) (domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	DeleteByID(ctx context.Context, id int64) error
}

type TodoService interface {
	List(ctx context.Context) ([]domain.Todo, error)
	Create(ctx context.Context, text string) (domain.Todo, error)
	Update(ctx context.Context, patch domain.TodoPatch) (domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}
