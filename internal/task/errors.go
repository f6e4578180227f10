package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrMissingField     = errors.New("all fields are required")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrTaskNotFound     = errors.New("task not found")
)
