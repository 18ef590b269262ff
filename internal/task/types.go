package task

import "time"

// Priority levels accepted for a task.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Field limits, counted in characters.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// --- Task Domain Model ---

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID          int64
	UserID      string
	Title       string
	Description *string
	IsCompleted bool
	Priority    *string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
}

type ListInput struct {
	IncludeCompleted bool
}

// UpdateInput is a partial update: nil fields keep their current value.
// An empty Description or Priority clears the field.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Priority    *string
	DueDate     *string
}

type CompleteInput struct {
	ID        string
	Completed bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task Task
}

type ListOutput struct {
	Tasks []Task
}

type DetailOutput struct {
	Task Task
}

type UpdateOutput struct {
	Task Task
}

type DeleteOutput struct {
	Success bool
	TaskID  int64
}

type CompleteOutput struct {
	Task Task
}
