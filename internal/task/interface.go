package task

import (
	"context"

	"task-chat-agent/internal/model"
)

// UseCase is the task store. Every call is scoped to sc.UserID: tasks owned by
// other users behave as if they did not exist.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) (DeleteOutput, error)
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (CompleteOutput, error)
}
