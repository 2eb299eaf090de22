package handler

import (
	"pollsapp/internal/adapter/http/helper"
	"pollsapp/internal/adapter/http/validation"
	"pollsapp/internal/core/apperror"
	"pollsapp/internal/core/util"
	"pollsapp/pkg/config"
	ct "pollsapp/pkg/context"
	. "pollsapp/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type base struct {
	logger *config.LokiLogger
}

func newBase(logger *config.LokiLogger) base {
	if logger == nil {
		logger = config.NewNopLogger()
	}

	return base{logger: logger}
}

func spanAttributes(c *gin.Context, operation string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("handler.operation", operation),
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	}
}

// bind decodes and validates the body into a T. On failure the error
// response has already been written.
func bind[T any](c *gin.Context, span trace.Span) (T, bool) {
	params, err := util.BindJSON[T](c)
	if err != nil {
		AddSpanError(span, err)
		helper.SendAppError(c, err)
		return params, false
	}

	if err := validation.Validator.Struct(params); err != nil {
		AddSpanError(span, err)
		helper.SendAppError(c, apperror.Validation("Missing required fields.", err))
		return params, false
	}

	return params, true
}

// fail reports err to the client. Only unexpected errors are logged.
func (b base) fail(c *gin.Context, span trace.Span, operation string, err error) {
	AddSpanError(span, err)

	code := apperror.GetCode(err)
	if code == apperror.CodeInternal || code == apperror.CodeUnknown {
		c.Error(err)
		b.logger.ErrorWithTrace(c.Request.Context(), "Request failed",
			zap.String("operation", operation),
			zap.String("request_id", ct.RequestID(c.Request.Context())),
			zap.Error(err),
		)
	}

	helper.SendAppError(c, err)
}
