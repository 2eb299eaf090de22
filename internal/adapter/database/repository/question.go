package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"pollsapp/internal/adapter/database"
	"pollsapp/internal/core/domain"
	"pollsapp/internal/core/port"
	tel "pollsapp/internal/core/telemetry"
)

var questionColumns = []string{"id", "question_text", "pub_date"}

type QuestionRepository struct {
	db        *database.DB
	telemetry port.Telemetry
}

func NewQuestionRepository(db *database.DB, telemetry port.Telemetry) port.QuestionRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &QuestionRepository{
		db:        db,
		telemetry: telemetry,
	}
}

func scanQuestion(row database.RowScanner) (domain.Question, error) {
	var question domain.Question

	err := row.Scan(&question.ID, &question.QuestionText, &question.PubDate)

	return question, err
}

func (qr *QuestionRepository) attrs(extra map[string]interface{}) map[string]interface{} {
	attrs := map[string]interface{}{
		"db.system": qr.db.Driver,
		"db.table":  "questions",
	}

	for k, v := range extra {
		attrs[k] = v
	}

	return attrs
}

func (qr *QuestionRepository) GetAll(ctx context.Context) ([]domain.Question, error) {
	ctx, op := tel.StartOperation(ctx, qr.telemetry, "GetAll", "question", qr.attrs(nil))

	query, args, err := qr.db.QueryBuilder.Select(questionColumns...).
		From("questions").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, op.End(err)
	}

	op.Query(query, args)

	rows, err := qr.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, op.End(err)
	}

	questions, err := database.ScanAll(rows, scanQuestion)
	if err != nil {
		return nil, op.End(err)
	}

	op.SetAttributes(map[string]interface{}{"db.rows_returned": len(questions)})

	return questions, op.End(nil)
}

func (qr *QuestionRepository) GetByID(ctx context.Context, id int64) (domain.Question, error) {
	ctx, op := tel.StartOperation(ctx, qr.telemetry, "GetByID", "question", qr.attrs(map[string]interface{}{
		"question.id": id,
	}))

	query, args, err := qr.db.QueryBuilder.Select(questionColumns...).
		From("questions").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.Question{}, op.End(err)
	}

	op.Query(query, args)

	question, err := scanQuestion(qr.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Question{}, op.End(database.NotFound(err))
	}

	return question, op.End(nil)
}

func (qr *QuestionRepository) Create(ctx context.Context, question domain.Question) (domain.Question, error) {
	ctx, op := tel.StartOperation(ctx, qr.telemetry, "Create", "question", qr.attrs(map[string]interface{}{
		"db.operation": "INSERT",
	}))

	query, args, err := qr.db.QueryBuilder.Insert("questions").
		SetMap(question.ToMap()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Question{}, op.End(err)
	}

	op.Query(query, args)

	if err := qr.db.QueryRowContext(ctx, query, args...).Scan(&question.ID); err != nil {
		return domain.Question{}, op.End(err)
	}

	op.SetAttributes(map[string]interface{}{"question.id": question.ID})

	return question, op.End(nil)
}

func (qr *QuestionRepository) Update(ctx context.Context, question domain.Question) (domain.Question, error) {
	ctx, op := tel.StartOperation(ctx, qr.telemetry, "Update", "question", qr.attrs(map[string]interface{}{
		"db.operation": "UPDATE",
		"question.id":  question.ID,
	}))

	query, args, err := qr.db.QueryBuilder.Update("questions").
		SetMap(question.ToMap()).
		Where(sq.Eq{"id": question.ID}).
		ToSql()
	if err != nil {
		return domain.Question{}, op.End(err)
	}

	op.Query(query, args)

	if err := execAffectingOne(ctx, qr.db, query, args); err != nil {
		return domain.Question{}, op.End(err)
	}

	return question, op.End(nil)
}

func (qr *QuestionRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, op := tel.StartOperation(ctx, qr.telemetry, "DeleteByID", "question", qr.attrs(map[string]interface{}{
		"db.operation": "DELETE",
		"question.id":  id,
	}))

	query, args, err := qr.db.QueryBuilder.Delete("questions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return op.End(err)
	}

	op.Query(query, args)

	return op.End(execAffectingOne(ctx, qr.db, query, args))
}
