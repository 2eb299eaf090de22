package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"pollsapp/internal/adapter/database"
	"pollsapp/internal/core/domain"
	"pollsapp/internal/core/port"
	tel "pollsapp/internal/core/telemetry"
)

var todoColumns = []string{"id", "text", "completed"}

type TodoRepository struct {
	db        *database.DB
	telemetry port.Telemetry
}

func NewTodoRepository(db *database.DB, telemetry port.Telemetry) port.TodoRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoRepository{
		db:        db,
		telemetry: telemetry,
	}
}

func scanTodo(row database.RowScanner) (domain.Todo, error) {
	var todo domain.Todo

	err := row.Scan(&todo.ID, &todo.Text, &todo.Completed)

	return todo, err
}

func (tr *TodoRepository) attrs(extra map[string]interface{}) map[string]interface{} {
	attrs := map[string]interface{}{
		"db.system": tr.db.Driver,
		"db.table":  "todos",
	}

	for k, v := range extra {
		attrs[k] = v
	}

	return attrs
}

func (tr *TodoRepository) GetAll(ctx context.Context) ([]domain.Todo, error) {
	ctx, op := tel.StartOperation(ctx, tr.telemetry, "GetAll", "todo", tr.attrs(nil))

	query, args, err := tr.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, op.End(err)
	}

	op.Query(query, args)

	rows, err := tr.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, op.End(err)
	}

	todos, err := database.ScanAll(rows, scanTodo)
	if err != nil {
		return nil, op.End(err)
	}

	op.SetAttributes(map[string]interface{}{"db.rows_returned": len(todos)})

	return todos, op.End(nil)
}

func (tr *TodoRepository) GetByID(ctx context.Context, id int64) (domain.Todo, error) {
	ctx, op := tel.StartOperation(ctx, tr.telemetry, "GetByID", "todo", tr.attrs(map[string]interface{}{
		"todo.id": id,
	}))

	query, args, err := tr.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.Todo{}, op.End(err)
	}

	op.Query(query, args)

	todo, err := scanTodo(tr.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Todo{}, op.End(database.NotFound(err))
	}

	return todo, op.End(nil)
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	ctx, op := tel.StartOperation(ctx, tr.telemetry, "Create", "todo", tr.attrs(map[string]interface{}{
		"db.operation": "INSERT",
	}))

	query, args, err := tr.db.QueryBuilder.Insert("todos").
		SetMap(todo.ToMap()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Todo{}, op.End(err)
	}

	op.Query(query, args)

	if err := tr.db.QueryRowContext(ctx, query, args...).Scan(&todo.ID); err != nil {
		return domain.Todo{}, op.End(err)
	}

	op.SetAttributes(map[string]interface{}{"todo.id": todo.ID})

	return todo, op.End(nil)
}

func (tr *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	ctx, op := tel.StartOperation(ctx, tr.telemetry, "Update", "todo", tr.attrs(map[string]interface{}{
		"db.operation": "UPDATE",
		"todo.id":      todo.ID,
	}))

	query, args, err := tr.db.QueryBuilder.Update("todos").
		SetMap(todo.ToMap()).
		Where(sq.Eq{"id": todo.ID}).
		ToSql()
	if err != nil {
		return domain.Todo{}, op.End(err)
	}

	op.Query(query, args)

	if err := execAffectingOne(ctx, tr.db, query, args); err != nil {
		return domain.Todo{}, op.End(err)
	}

	return todo, op.End(nil)
}

func (tr *TodoRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, op := tel.StartOperation(ctx, tr.telemetry, "DeleteByID", "todo", tr.attrs(map[string]interface{}{
		"db.operation": "DELETE",
		"todo.id":      id,
	}))

	query, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return op.End(err)
	}

	op.Query(query, args)

	return op.End(execAffectingOne(ctx, tr.db, query, args))
}
