package database

import "pollsapp/internal/core/apperror"

type notFoundError struct {
	cause error
}

func (e notFoundError) Error() string {
	return apperror.ErrNotFound.Error()
}

func (e notFoundError) Is(target error) bool {
	return target == apperror.ErrNotFound
}

func (e notFoundError) Unwrap() error {
	return e.cause
}
