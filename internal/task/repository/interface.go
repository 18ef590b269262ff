package repository

import (
	"context"

	"task-chat-agent/internal/task"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Lookups filter by owner, so a task owned by someone else reads as not found.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) (bool, error)
}
