package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description *string
	Priority    *string
	DueDate     *time.Time
}

// GetOneTaskOptions identifies a single Task. Both fields are required.
type GetOneTaskOptions struct {
	ID     int64
	UserID string
}

// ListTasksOptions holds filter parameters for listing Tasks.
type ListTasksOptions struct {
	UserID           string
	IncludeCompleted bool
}

// UpdateTaskOptions holds the full new state of an existing Task.
type UpdateTaskOptions struct {
	ID          int64
	UserID      string
	Title       string
	Description *string
	IsCompleted bool
	Priority    *string
	DueDate     *time.Time
}

// DeleteTaskOptions identifies the Task to remove.
type DeleteTaskOptions struct {
	ID     int64
	UserID string
}
