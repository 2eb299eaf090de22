package handler

import (
	"context"
	"net/http"
	"time"

	"pollsapp/internal/core/model/response"
	"pollsapp/internal/core/port"
	"pollsapp/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	base
	db port.HealthChecker
}

func NewHealthHandler(db port.HealthChecker, logger *config.LokiLogger) *HealthHandler {
	return &HealthHandler{
		base: newBase(logger),
		db:   db,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.WarnWithTrace(ctx, "Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, response.HealthResponse{Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}
