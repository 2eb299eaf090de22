package handler

import (
	. "pollsapp/internal/adapter/http/helper"
	"pollsapp/internal/core/domain"
	"pollsapp/internal/core/model/request"
	"pollsapp/internal/core/model/response"
	"pollsapp/internal/core/port"
	"pollsapp/pkg/config"
	. "pollsapp/pkg/tracing"

	"github.com/gin-gonic/gin"
)

type ChoiceHandler struct {
	base
	svc port.ChoiceService
}

func NewChoiceHandler(svc port.ChoiceService, logger *config.LokiLogger) *ChoiceHandler {
	return &ChoiceHandler{
		base: newBase(logger),
		svc:  svc,
	}
}

func (h *ChoiceHandler) CreateChoice(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.choice.CreateChoice", spanAttributes(c, "CreateChoice"))
	defer span.End()

	params, ok := bind[request.CreateChoiceRequest](c, span)
	if !ok {
		return
	}

	choice, err := h.svc.Create(ctx, domain.Choice{
		QuestionID: *params.QuestionID,
		ChoiceText: *params.ChoiceText,
		Votes:      *params.Votes,
	})
	if err != nil {
		h.fail(c, span, "CreateChoice", err)
		return
	}

	SendSuccess(c, response.NewChoiceSummary(choice))
}

func (h *ChoiceHandler) UpdateChoice(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.choice.UpdateChoice", spanAttributes(c, "UpdateChoice"))
	defer span.End()

	params, ok := bind[request.UpdateChoiceRequest](c, span)
	if !ok {
		return
	}

	choice, err := h.svc.Update(ctx, *params.ID, *params.ChoiceText, *params.Votes)
	if err != nil {
		h.fail(c, span, "UpdateChoice", err)
		return
	}

	SendSuccess(c, response.NewChoiceSummary(choice))
}

func (h *ChoiceHandler) DeleteChoice(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.choice.DeleteChoice", spanAttributes(c, "DeleteChoice"))
	defer span.End()

	params, ok := bind[request.DeleteRequest](c, span)
	if !ok {
		return
	}

	choice, err := h.svc.Delete(ctx, *params.ID)
	if err != nil {
		h.fail(c, span, "DeleteChoice", err)
		return
	}

	SendSuccess(c, response.NewChoiceSummary(choice))
}
