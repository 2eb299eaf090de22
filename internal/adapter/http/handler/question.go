package handler

import (
	"strconv"

	. "pollsapp/internal/adapter/http/helper"
	"pollsapp/internal/core/model/request"
	"pollsapp/internal/core/model/response"
	"pollsapp/internal/core/port"
	"pollsapp/pkg/config"
	. "pollsapp/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type QuestionHandler struct {
	base
	svc port.QuestionService
}

func NewQuestionHandler(svc port.QuestionService, logger *config.LokiLogger) *QuestionHandler {
	return &QuestionHandler{
		base: newBase(logger),
		svc:  svc,
	}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.question.ListQuestions", spanAttributes(c, "ListQuestions"))
	defer span.End()

	details, err := h.svc.List(ctx)
	if err != nil {
		h.fail(c, span, "ListQuestions", err)
		return
	}

	span.SetAttributes(attribute.Int("question.count", len(details)))

	SendSuccess(c, response.NewQuestionList(details))
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.question.GetQuestion", spanAttributes(c, "GetQuestion"))
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		AddSpanError(span, err)
		SendBadRequestError(c, "Invalid question id.")
		return
	}

	span.SetAttributes(attribute.Int64("question.id", id))

	detail, err := h.svc.Get(ctx, id)
	if err != nil {
		h.fail(c, span, "GetQuestion", err)
		return
	}

	SendSuccess(c, response.NewQuestionResponse(detail))
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.question.CreateQuestion", spanAttributes(c, "CreateQuestion"))
	defer span.End()

	params, ok := bind[request.CreateQuestionRequest](c, span)
	if !ok {
		return
	}

	question, err := h.svc.Create(ctx, *params.QuestionText)
	if err != nil {
		h.fail(c, span, "CreateQuestion", err)
		return
	}

	SendSuccess(c, response.NewQuestionSummary(question))
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.question.UpdateQuestion", spanAttributes(c, "UpdateQuestion"))
	defer span.End()

	params, ok := bind[request.UpdateQuestionRequest](c, span)
	if !ok {
		return
	}

	question, err := h.svc.UpdateText(ctx, *params.ID, *params.QuestionText)
	if err != nil {
		h.fail(c, span, "UpdateQuestion", err)
		return
	}

	SendSuccess(c, response.NewQuestionSummary(question))
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.question.DeleteQuestion", spanAttributes(c, "DeleteQuestion"))
	defer span.End()

	params, ok := bind[request.DeleteRequest](c, span)
	if !ok {
		return
	}

	question, err := h.svc.Delete(ctx, *params.ID)
	if err != nil {
		h.fail(c, span, "DeleteQuestion", err)
		return
	}

	SendSuccess(c, response.NewQuestionSummary(question))
}
