package http

import (
	"errors"

	"task-tracker/internal/task"
	pkgErrors "task-tracker/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is a store failure and becomes a 500 carrying fallback.
func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, task.ErrMissingField):
		return pkgErrors.NewBadRequestError(msgAllFieldsRequired)
	case errors.Is(err, task.ErrInvalidSortField):
		return pkgErrors.NewBadRequestError(msgInvalidSortBy)
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewNotFoundError(msgTaskNotFound)
	default:
		return pkgErrors.NewInternalServerError(fallback)
	}
}
