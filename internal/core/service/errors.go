package service

import (
	"errors"
	"fmt"

	"pollsapp/internal/core/apperror"
)

// classify turns a repository error into the error reported to clients.
func classify(err error, notFoundMessage string, operation string) error {
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.NotFound(notFoundMessage)
	}

	return apperror.Internal("internal server error", fmt.Errorf("%s: %w", operation, err))
}
