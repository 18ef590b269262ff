package task

import (
	"errors"
	"net/http"
)

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTaskID      = errors.New("invalid task id format")
	ErrEmptyTitle         = errors.New("task title cannot be empty")
	ErrTitleTooLong       = errors.New("task title cannot exceed 200 characters")
	ErrDescriptionTooLong = errors.New("task description cannot exceed 2000 characters")
	ErrInvalidPriority    = errors.New("task priority must be one of high, medium, low")
	ErrInvalidDueDate     = errors.New("invalid due date, use ISO format (YYYY-MM-DD)")
	ErrMissingUser        = errors.New("user id is required")
)

// IsValidation reports whether err is a caller input error.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidTaskID),
		errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrDescriptionTooLong),
		errors.Is(err, ErrInvalidPriority),
		errors.Is(err, ErrInvalidDueDate),
		errors.Is(err, ErrMissingUser):
		return true
	}
	return false
}

// Code maps err onto the status code reported by the tool surfaces.
func Code(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrTaskNotFound):
		return http.StatusNotFound
	case IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
