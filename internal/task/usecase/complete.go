package usecase

import (
	"context"

	"task-chat-agent/internal/model"
	"task-chat-agent/internal/task"
	repo "task-chat-agent/internal/task/repository"
)

// Complete sets the completion flag of a Task.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input task.CompleteInput) (task.CompleteOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return task.CompleteOutput{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		IsCompleted: input.Completed,
		Priority:    existing.Priority,
		DueDate:     existing.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Complete: %v", err)
		return task.CompleteOutput{}, err
	}
	if t.ID == 0 {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}
	return task.CompleteOutput{Task: t}, nil
}
