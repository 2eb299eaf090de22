package util

import (
	"pollsapp/internal/core/apperror"

	"github.com/gin-gonic/gin"
)

const invalidJSON = "Invalid JSON."

// BindJSON decodes the request body into a T. Empty bodies, syntax errors
// and type mismatches are all reported as a bad request.
func BindJSON[T any](c *gin.Context) (T, error) {
	var params T

	if err := c.ShouldBindJSON(&params); err != nil {
		return params, apperror.BadRequest(invalidJSON, err)
	}

	return params, nil
}
