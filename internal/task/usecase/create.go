package usecase

import (
	"context"

	"task-chat-agent/internal/model"
	"task-chat-agent/internal/task"
	repo "task-chat-agent/internal/task/repository"
)

// Create validates input and stores a new Task for sc.UserID.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if sc.UserID == "" {
		return task.CreateOutput{}, task.ErrMissingUser
	}

	title, err := uc.validateTitle(input.Title)
	if err != nil {
		return task.CreateOutput{}, err
	}
	description, err := uc.validateDescription(input.Description)
	if err != nil {
		return task.CreateOutput{}, err
	}
	priority, err := uc.validatePriority(input.Priority)
	if err != nil {
		return task.CreateOutput{}, err
	}
	dueDate, err := uc.parseDueDate(input.DueDate)
	if err != nil {
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Create: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "internal.task.usecase.Create: user=%s task=%d", sc.UserID, t.ID)
	return task.CreateOutput{Task: t}, nil
}
