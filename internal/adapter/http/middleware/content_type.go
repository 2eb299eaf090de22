package middleware

import (
	"net/http"

	"pollsapp/internal/adapter/http/helper"
	"pollsapp/internal/core/apperror"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects mutating requests that do not declare a JSON body.
// Browsers cannot send application/json cross-origin without a preflight,
// so this stands in for CSRF tokens on a cookie-less API.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		if c.ContentType() != gin.MIMEJSON {
			helper.SendError(c, apperror.CodeUnsupportedMediaType, "Content-Type must be application/json.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
