package middleware

import (
	"time"

	"pollsapp/pkg/config"
	ct "pollsapp/pkg/context"
	"pollsapp/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func LoggingMiddleware(logger *config.LokiLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("request_id", ct.RequestID(ctx)),
			zap.String("trace_id", tracing.GetTraceID(ctx)),
		}

		switch {
		case status >= 500:
			logger.ErrorWithTrace(ctx, "HTTP Request", fields...)
		case status >= 400:
			logger.WarnWithTrace(ctx, "HTTP Request", fields...)
		default:
			logger.InfoWithTrace(ctx, "HTTP Request", fields...)
		}

		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			logger.Logger.Ctx(ctx).Error("Request errors",
				zap.String("request_id", ct.RequestID(ctx)),
				zap.Strings("errors", errs.Errors()),
			)
		}
	}
}
