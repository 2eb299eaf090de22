package service

import (
	"context"
	"time"

	"pollsapp/internal/core/domain"
	"pollsapp/internal/core/port"
	tel "pollsapp/internal/core/telemetry"
)

const questionNotFound = "Question not found"

type QuestionService struct {
	questions port.QuestionRepository
	choices   port.ChoiceRepository
	telemetry port.Telemetry
	now       func() time.Time
}

func NewQuestionService(questions port.QuestionRepository, choices port.ChoiceRepository, telemetry port.Telemetry) *QuestionService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &QuestionService{
		questions: questions,
		choices:   choices,
		telemetry: telemetry,
		now:       time.Now,
	}
}

// WithClock replaces the source of pub_date.
func (qs *QuestionService) WithClock(now func() time.Time) *QuestionService {
	qs.now = now
	return qs
}

func (qs *QuestionService) List(ctx context.Context) ([]domain.QuestionDetail, error) {
	ctx, span := qs.telemetry.StartServiceSpan(ctx, "QuestionService", "List", nil)
	defer span.End()

	questions, err := qs.questions.GetAll(ctx)
	if err != nil {
		return nil, classify(err, questionNotFound, "list questions")
	}

	choices, err := qs.choices.GetAll(ctx)
	if err != nil {
		return nil, classify(err, questionNotFound, "list choices")
	}

	return domain.GroupChoices(questions, choices), nil
}

func (qs *QuestionService) Get(ctx context.Context, id int64) (domain.QuestionDetail, error) {
	ctx, span := qs.telemetry.StartServiceSpan(ctx, "QuestionService", "Get", map[string]interface{}{
		"question.id": id,
	})
	defer span.End()

	question, err := qs.questions.GetByID(ctx, id)
	if err != nil {
		return domain.QuestionDetail{}, classify(err, questionNotFound, "get question")
	}

	choices, err := qs.choices.GetByQuestionID(ctx, id)
	if err != nil {
		return domain.QuestionDetail{}, classify(err, questionNotFound, "get question choices")
	}

	return domain.QuestionDetail{Question: question, Choices: choices}, nil
}

func (qs *QuestionService) Create(ctx context.Context, questionText string) (domain.Question, error) {
	ctx, span := qs.telemetry.StartServiceSpan(ctx, "QuestionService", "Create", nil)
	defer span.End()

	question, err := qs.questions.Create(ctx, domain.Question{
		QuestionText: questionText,
		PubDate:      qs.now().UTC(),
	})
	if err != nil {
		return domain.Question{}, classify(err, questionNotFound, "create question")
	}

	qs.telemetry.RecordBusinessEvent(ctx, "created", "question", question.ID, map[string]interface{}{
		"pub_date": question.PubDate,
	})

	return question, nil
}

func (qs *QuestionService) UpdateText(ctx context.Context, id int64, questionText string) (domain.Question, error) {
	ctx, span := qs.telemetry.StartServiceSpan(ctx, "QuestionService", "UpdateText", map[string]interface{}{
		"question.id": id,
	})
	defer span.End()

	question, err := qs.questions.GetByID(ctx, id)
	if err != nil {
		return domain.Question{}, classify(err, questionNotFound, "get question")
	}

	question.QuestionText = questionText

	question, err = qs.questions.Update(ctx, question)
	if err != nil {
		return domain.Question{}, classify(err, questionNotFound, "update question")
	}

	qs.telemetry.RecordBusinessEvent(ctx, "updated", "question", question.ID, nil)

	return question, nil
}

// Delete removes the question and returns it as it was. Its choices are kept.
func (qs *QuestionService) Delete(ctx context.Context, id int64) (domain.Question, error) {
	ctx, span := qs.telemetry.StartServiceSpan(ctx, "QuestionService", "Delete", map[string]interface{}{
		"question.id": id,
	})
	defer span.End()

	question, err := qs.questions.GetByID(ctx, id)
	if err != nil {
		return domain.Question{}, classify(err, questionNotFound, "get question")
	}

	if err := qs.questions.DeleteByID(ctx, id); err != nil {
		return domain.Question{}, classify(err, questionNotFound, "delete question")
	}

	qs.telemetry.RecordBusinessEvent(ctx, "deleted", "question", id, nil)

	return question, nil
}
