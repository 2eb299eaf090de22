package service

import (
	"context"

	"pollsapp/internal/core/domain"
	"pollsapp/internal/core/port"
	tel "pollsapp/internal/core/telemetry"
)

const todoNotFound = "Todo not found."

type TodoService struct {
	repo      port.TodoRepository
	telemetry port.Telemetry
}

func NewTodoService(repo port.TodoRepository, telemetry port.Telemetry) *TodoService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoService{repo: repo, telemetry: telemetry}
}

func (ts *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "TodoService", "List", nil)
	defer span.End()

	todos, err := ts.repo.GetAll(ctx)
	if err != nil {
		return nil, classify(err, todoNotFound, "list todos")
	}

	return todos, nil
}

// Create stores a new, incomplete todo.
func (ts *TodoService) Create(ctx context.Context, text string) (domain.Todo, error) {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "TodoService", "Create", nil)
	defer span.End()

	todo, err := ts.repo.Create(ctx, domain.Todo{Text: text, Completed: false})
	if err != nil {
		return domain.Todo{}, classify(err, todoNotFound, "create todo")
	}

	ts.telemetry.RecordBusinessEvent(ctx, "created", "todo", todo.ID, nil)

	return todo, nil
}

// Update applies the fields present in patch. A patch with no fields still
// saves the todo unchanged.
func (ts *TodoService) Update(ctx context.Context, patch domain.TodoPatch) (domain.Todo, error) {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "TodoService", "Update", map[string]interface{}{
		"todo.id":    patch.ID,
		"todo.empty": patch.IsEmpty(),
	})
	defer span.End()

	todo, err := ts.repo.GetByID(ctx, patch.ID)
	if err != nil {
		return domain.Todo{}, classify(err, todoNotFound, "get todo")
	}

	changed := patch.Apply(&todo)

	todo, err = ts.repo.Update(ctx, todo)
	if err != nil {
		return domain.Todo{}, classify(err, todoNotFound, "update todo")
	}

	if len(changed) > 0 {
		ts.telemetry.RecordBusinessEvent(ctx, "updated", "todo", todo.ID, map[string]interface{}{
			"changes": changed,
		})
	}

	return todo, nil
}

func (ts *TodoService) Delete(ctx context.Context, id int64) error {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "TodoService", "Delete", map[string]interface{}{
		"todo.id": id,
	})
	defer span.End()

	if err := ts.repo.DeleteByID(ctx, id); err != nil {
		return classify(err, todoNotFound, "delete todo")
	}

	ts.telemetry.RecordBusinessEvent(ctx, "deleted", "todo", id, nil)

	return nil
}
