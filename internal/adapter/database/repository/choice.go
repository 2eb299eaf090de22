package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"pollsapp/internal/adapter/database"
	"pollsapp/internal/core/domain"
	"pollsapp/internal/core/port"
	tel "pollsapp/internal/core/telemetry"
)

var choiceColumns = []string{"id", "question_id", "choice_text", "votes"}

type ChoiceRepository struct {
	db        *database.DB
	telemetry port.Telemetry
}

func NewChoiceRepository(db *database.DB, telemetry port.Telemetry) port.ChoiceRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &ChoiceRepository{
		db:        db,
		telemetry: telemetry,
	}
}

func scanChoice(row database.RowScanner) (domain.Choice, error) {
	var choice domain.Choice

	err := row.Scan(&choice.ID, &choice.QuestionID, &choice.ChoiceText, &choice.Votes)

	return choice, err
}

func (cr *ChoiceRepository) attrs(extra map[string]interface{}) map[string]interface{} {
	attrs := map[string]interface{}{
		"db.system": cr.db.Driver,
		"db.table":  "choices",
	}

	for k, v := range extra {
		attrs[k] = v
	}

	return attrs
}

func (cr *ChoiceRepository) list(ctx context.Context, operation string, where interface{}, attrs map[string]interface{}) ([]domain.Choice, error) {
	ctx, op := tel.StartOperation(ctx, cr.telemetry, operation, "choice", cr.attrs(attrs))

	builder := cr.db.QueryBuilder.Select(choiceColumns...).
		From("choices").
		OrderBy("id ASC")

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, op.End(err)
	}

	op.Query(query, args)

	rows, err := cr.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, op.End(err)
	}

	choices, err := database.ScanAll(rows, scanChoice)
	if err != nil {
		return nil, op.End(err)
	}

	op.SetAttributes(map[string]interface{}{"db.rows_returned": len(choices)})

	return choices, op.End(nil)
}

func (cr *ChoiceRepository) GetAll(ctx context.Context) ([]domain.Choice, error) {
	return cr.list(ctx, "GetAll", nil, nil)
}

func (cr *ChoiceRepository) GetByQuestionID(ctx context.Context, questionID int64) ([]domain.Choice, error) {
	return cr.list(ctx, "GetByQuestionID", sq.Eq{"question_id": questionID}, map[string]interface{}{
		"question.id": questionID,
	})
}

func (cr *ChoiceRepository) GetByID(ctx context.Context, id int64) (domain.Choice, error) {
	ctx, op := tel.StartOperation(ctx, cr.telemetry, "GetByID", "choice", cr.attrs(map[string]interface{}{
		"choice.id": id,
	}))

	query, args, err := cr.db.QueryBuilder.Select(choiceColumns...).
		From("choices").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.Choice{}, op.End(err)
	}

	op.Query(query, args)

	choice, err := scanChoice(cr.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Choice{}, op.End(database.NotFound(err))
	}

	return choice, op.End(nil)
}

func (cr *ChoiceRepository) Create(ctx context.Context, choice domain.Choice) (domain.Choice, error) {
	ctx, op := tel.StartOperation(ctx, cr.telemetry, "Create", "choice", cr.attrs(map[string]interface{}{
		"db.operation": "INSERT",
		"question.id":  choice.QuestionID,
	}))

	query, args, err := cr.db.QueryBuilder.Insert("choices").
		SetMap(choice.ToMap()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Choice{}, op.End(err)
	}

	op.Query(query, args)

	if err := cr.db.QueryRowContext(ctx, query, args...).Scan(&choice.ID); err != nil {
		return domain.Choice{}, op.End(err)
	}

	op.SetAttributes(map[string]interface{}{"choice.id": choice.ID})

	return choice, op.End(nil)
}

func (cr *ChoiceRepository) Update(ctx context.Context, choice domain.Choice) (domain.Choice, error) {
	ctx, op := tel.StartOperation(ctx, cr.telemetry, "Update", "choice", cr.attrs(map[string]interface{}{
		"db.operation": "UPDATE",
		"choice.id":    choice.ID,
	}))

	query, args, err := cr.db.QueryBuilder.Update("choices").
		SetMap(choice.ToMap()).
		Where(sq.Eq{"id": choice.ID}).
		ToSql()
	if err != nil {
		return domain.Choice{}, op.End(err)
	}

	op.Query(query, args)

	if err := execAffectingOne(ctx, cr.db, query, args); err != nil {
		return domain.Choice{}, op.End(err)
	}

	return choice, op.End(nil)
}

func (cr *ChoiceRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, op := tel.StartOperation(ctx, cr.telemetry, "DeleteByID", "choice", cr.attrs(map[string]interface{}{
		"db.operation": "DELETE",
		"choice.id":    id,
	}))

	query, args, err := cr.db.QueryBuilder.Delete("choices").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return op.End(err)
	}

	op.Query(query, args)

	return op.End(execAffectingOne(ctx, cr.db, query, args))
}
