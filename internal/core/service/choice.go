package service

import (
	"context"

	"pollsapp/internal/core/domain"
	"pollsapp/internal/core/port"
	tel "pollsapp/internal/core/telemetry"
)

const choiceNotFound = "Choice not found."

type ChoiceService struct {
	repo      port.ChoiceRepository
	telemetry port.Telemetry
}

func NewChoiceService(repo port.ChoiceRepository, telemetry port.Telemetry) *ChoiceService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &ChoiceService{repo: repo, telemetry: telemetry}
}

// Create stores the choice as given. question_id is not checked against
// existing questions.
func (cs *ChoiceService) Create(ctx context.Context, choice domain.Choice) (domain.Choice, error) {
	ctx, span := cs.telemetry.StartServiceSpan(ctx, "ChoiceService", "Create", map[string]interface{}{
		"question.id": choice.QuestionID,
	})
	defer span.End()

	choice.ID = 0

	created, err := cs.repo.Create(ctx, choice)
	if err != nil {
		return domain.Choice{}, classify(err, choiceNotFound, "create choice")
	}

	cs.telemetry.RecordBusinessEvent(ctx, "created", "choice", created.ID, map[string]interface{}{
		"question_id": created.QuestionID,
	})

	return created, nil
}

func (cs *ChoiceService) Update(ctx context.Context, id int64, choiceText string, votes int) (domain.Choice, error) {
	ctx, span := cs.telemetry.StartServiceSpan(ctx, "ChoiceService", "Update", map[string]interface{}{
		"choice.id": id,
	})
	defer span.End()

	choice, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Choice{}, classify(err, choiceNotFound, "get choice")
	}

	choice.ChoiceText = choiceText
	choice.Votes = votes

	choice, err = cs.repo.Update(ctx, choice)
	if err != nil {
		return domain.Choice{}, classify(err, choiceNotFound, "update choice")
	}

	cs.telemetry.RecordBusinessEvent(ctx, "updated", "choice", choice.ID, map[string]interface{}{
		"votes": choice.Votes,
	})

	return choice, nil
}

func (cs *ChoiceService) Delete(ctx context.Context, id int64) (domain.Choice, error) {
	ctx, span := cs.telemetry.StartServiceSpan(ctx, "ChoiceService", "Delete", map[string]interface{}{
		"choice.id": id,
	})
	defer span.End()

	choice, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Choice{}, classify(err, choiceNotFound, "get choice")
	}

	if err := cs.repo.DeleteByID(ctx, id); err != nil {
		return domain.Choice{}, classify(err, choiceNotFound, "delete choice")
	}

	cs.telemetry.RecordBusinessEvent(ctx, "deleted", "choice", id, nil)

	return choice, nil
}
