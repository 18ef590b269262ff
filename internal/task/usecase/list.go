package usecase

import (
	"context"

	"task-chat-agent/internal/model"
	"task-chat-agent/internal/task"
	repo "task-chat-agent/internal/task/repository"
)

// List returns the caller's tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if sc.UserID == "" {
		return task.ListOutput{}, task.ErrMissingUser
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:           sc.UserID,
		IncludeCompleted: input.IncludeCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.List: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}
