package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTitleRequired   = errors.New("task title is required")
	ErrInvalidPriority = errors.New("priority must be high, medium, or low")
	ErrInvalidCategory = errors.New("category must be work, personal, study, or other")
	ErrNotFound        = errors.New("task not found")
)
