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
	"go.opentelemetry.io/otel/attribute"
)

type TodoHandler struct {
	base
	svc port.TodoService
}

func NewTodoHandler(svc port.TodoService, logger *config.LokiLogger) *TodoHandler {
	return &TodoHandler{
		base: newBase(logger),
		svc:  svc,
	}
}

func (t *TodoHandler) GetAllTodos(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.todo.GetAllTodos", spanAttributes(c, "GetAllTodos"))
	defer span.End()

	todos, err := t.svc.List(ctx)
	if err != nil {
		t.fail(c, span, "GetAllTodos", err)
		return
	}

	span.SetAttributes(attribute.Int("todo.count", len(todos)))

	SendSuccess(c, response.NewTodoList(todos))
}

func (t *TodoHandler) CreateTodo(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.todo.CreateTodo", spanAttributes(c, "CreateTodo"))
	defer span.End()

	params, ok := bind[request.CreateTodoRequest](c, span)
	if !ok {
		return
	}

	todo, err := t.svc.Create(ctx, *params.Text)
	if err != nil {
		t.fail(c, span, "CreateTodo", err)
		return
	}

	SendSuccess(c, response.TodoSummary{ID: todo.ID, Text: todo.Text})
}

func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.todo.UpdateTodo", spanAttributes(c, "UpdateTodo"))
	defer span.End()

	params, ok := bind[request.UpdateTodoRequest](c, span)
	if !ok {
		return
	}

	todo, err := t.svc.Update(ctx, domain.TodoPatch{
		ID:        *params.ID,
		Text:      params.Text,
		Completed: params.Completed,
	})
	if err != nil {
		t.fail(c, span, "UpdateTodo", err)
		return
	}

	SendSuccess(c, response.MessageResponse{Message: "Todo updated successfully.", ID: todo.ID})
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.todo.DeleteTodo", spanAttributes(c, "DeleteTodo"))
	defer span.End()

	params, ok := bind[request.DeleteRequest](c, span)
	if !ok {
		return
	}

	if err := t.svc.Delete(ctx, *params.ID); err != nil {
		t.fail(c, span, "DeleteTodo", err)
		return
	}

	SendSuccess(c, response.MessageResponse{Message: "Todo deleted successfully.", ID: *params.ID})
}
