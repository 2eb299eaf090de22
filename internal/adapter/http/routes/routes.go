package routes

import (
	"pollsapp/internal/adapter/http/handler"
	"pollsapp/internal/adapter/http/helper"
	"pollsapp/internal/adapter/http/middleware"
	"pollsapp/internal/adapter/ratelimit"
	"pollsapp/internal/core/telemetry"
	"pollsapp/pkg/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type HandlersConfig struct {
	QuestionHandler *handler.QuestionHandler
	ChoiceHandler   *handler.ChoiceHandler
	TodoHandler     *handler.TodoHandler
	HealthHandler   *handler.HealthHandler
}

// SetupRouterWithConfig builds the full middleware chain. A nil store falls
// back to in-process rate limit counters.
func SetupRouterWithConfig(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *config.LokiLogger, cfg *config.AppConfig, store ratelimit.Store) *gin.Engine {
	router := gin.New()

	router.Use(recovery())
	router.Use(middleware.CurrentMiddleware())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.NewHTTPSEnforcer(cfg.EnforceHTTPS, logger.Logger.Logger).HTTPSMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	router.Use(middleware.LoggingMiddleware(logger))

	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}

	if cfg.RateLimitEnabled {
		if store == nil {
			store = ratelimit.NewMemoryStore()
		}

		limiter := middleware.NewRateLimiter(store, cfg.RateLimitConfigs, logger.Logger.Logger, metrics)
		router.Use(limiter.RateLimitMiddleware())
	}

	router.Use(middleware.RequireJSON())

	registerRoutes(router, handlers)

	return router
}

// SetupRouterForTests mounts the routes behind the middleware that shapes
// responses, without logging, metrics or rate limits.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	router.Use(recovery())
	router.Use(middleware.CurrentMiddleware())
	router.Use(middleware.RequireJSON())

	registerRoutes(router, handlers)

	return router
}

func registerRoutes(router *gin.Engine, handlers HandlersConfig) {
	router.NoRoute(func(c *gin.Context) {
		helper.SendNotFoundError(c, "Not found.")
	})

	if handlers.HealthHandler != nil {
		router.GET("/health", handlers.HealthHandler.Health)
	}

	if h := handlers.QuestionHandler; h != nil {
		questions := router.Group("/questions")
		{
			questions.GET("", h.ListQuestions)
			questions.GET("/:id", h.GetQuestion)
			questions.POST("", h.CreateQuestion)
			questions.PUT("", h.UpdateQuestion)
			questions.DELETE("", h.DeleteQuestion)
		}
	}

	if h := handlers.ChoiceHandler; h != nil {
		choices := router.Group("/choices")
		{
			choices.POST("", h.CreateChoice)
			choices.PUT("", h.UpdateChoice)
			choices.DELETE("", h.DeleteChoice)
		}
	}

	if h := handlers.TodoHandler; h != nil {
		todos := router.Group("/todos")
		{
			todos.GET("", h.GetAllTodos)
			todos.POST("", h.CreateTodo)
			todos.PUT("", h.UpdateTodo)
			todos.DELETE("", h.DeleteTodo)
		}
	}
}

func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		helper.SendInternalError(c)
		c.Abort()
	})
}
