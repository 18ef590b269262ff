package usecase

import (
	"context"

	"task-chat-agent/internal/model"
	"task-chat-agent/internal/task"
	repo "task-chat-agent/internal/task/repository"
)

// getOwned loads a task by its string id, hiding tasks owned by other users.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	if sc.UserID == "" {
		return task.Task{}, task.ErrMissingUser
	}
	taskID, err := uc.parseID(id)
	if err != nil {
		return task.Task{}, err
	}

	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.getOwned: %v", err)
		return task.Task{}, err
	}
	if t.ID == 0 {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Detail retrieves a single Task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	opt := repo.UpdateTaskOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		IsCompleted: existing.IsCompleted,
		Priority:    existing.Priority,
		DueDate:     existing.DueDate,
	}
	if input.Title != nil {
		if opt.Title, err = uc.validateTitle(*input.Title); err != nil {
			return task.UpdateOutput{}, err
		}
	}
	if input.Description != nil {
		if opt.Description, err = uc.validateDescription(*input.Description); err != nil {
			return task.UpdateOutput{}, err
		}
	}
	if input.Priority != nil {
		if opt.Priority, err = uc.validatePriority(*input.Priority); err != nil {
			return task.UpdateOutput{}, err
		}
	}
	if input.DueDate != nil {
		if opt.DueDate, err = uc.parseDueDate(*input.DueDate); err != nil {
			return task.UpdateOutput{}, err
		}
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Update: %v", err)
		return task.UpdateOutput{}, err
	}
	if t.ID == 0 {
		// Deleted between the read and the write.
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: t}, nil
}

// Delete removes a Task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (task.DeleteOutput, error) {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return task.DeleteOutput{}, err
	}

	deleted, err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: existing.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Delete: %v", err)
		return task.DeleteOutput{}, err
	}
	if !deleted {
		return task.DeleteOutput{}, task.ErrTaskNotFound
	}

	uc.l.Infof(ctx, "internal.task.usecase.Delete: user=%s task=%d", sc.UserID, existing.ID)
	return task.DeleteOutput{Success: true, TaskID: existing.ID}, nil
}
