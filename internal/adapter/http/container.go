package http

import (
	"pollsapp/internal/adapter/database"
	"pollsapp/internal/adapter/database/repository"
	"pollsapp/internal/adapter/http/handler"
	"pollsapp/internal/adapter/http/routes"
	"pollsapp/internal/core/port"
	"pollsapp/internal/core/service"
	"pollsapp/pkg/config"
)

type Container struct {
	QuestionRepo port.QuestionRepository
	ChoiceRepo   port.ChoiceRepository
	TodoRepo     port.TodoRepository

	QuestionService port.QuestionService
	ChoiceService   port.ChoiceService
	TodoService     port.TodoService

	QuestionHandler *handler.QuestionHandler
	ChoiceHandler   *handler.ChoiceHandler
	TodoHandler     *handler.TodoHandler
	HealthHandler   *handler.HealthHandler
}

// NewContainer wires repositories, services and handlers. probe may be nil.
func NewContainer(db *database.DB, logger *config.LokiLogger, probe port.Telemetry) *Container {
	questionRepo := repository.NewQuestionRepository(db, probe)
	choiceRepo := repository.NewChoiceRepository(db, probe)
	todoRepo := repository.NewTodoRepository(db, probe)

	questionSvc := service.NewQuestionService(questionRepo, choiceRepo, probe)
	choiceSvc := service.NewChoiceService(choiceRepo, probe)
	todoSvc := service.NewTodoService(todoRepo, probe)

	return &Container{
		QuestionRepo: questionRepo,
		ChoiceRepo:   choiceRepo,
		TodoRepo:     todoRepo,

		QuestionService: questionSvc,
		ChoiceService:   choiceSvc,
		TodoService:     todoSvc,

		QuestionHandler: handler.NewQuestionHandler(questionSvc, logger),
		ChoiceHandler:   handler.NewChoiceHandler(choiceSvc, logger),
		TodoHandler:     handler.NewTodoHandler(todoSvc, logger),
		HealthHandler:   handler.NewHealthHandler(db, logger),
	}
}

func (c *Container) Handlers() routes.HandlersConfig {
	return routes.HandlersConfig{
		QuestionHandler: c.QuestionHandler,
		ChoiceHandler:   c.ChoiceHandler,
		TodoHandler:     c.TodoHandler,
		HealthHandler:   c.HealthHandler,
	}
}
