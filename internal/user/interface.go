package user

import (
	"context"

	"task-chat-agent/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetContext returns the profile of userID. Returns ErrUserNotFound when absent.
	GetContext(ctx context.Context, userID string) (Context, error)
	// Authenticate resolves a bearer token to the Scope it was issued for.
	Authenticate(ctx context.Context, token string) (model.Scope, error)
	CreateUser(ctx context.Context, input CreateUserInput) (CreateUserOutput, error)
	CreateSession(ctx context.Context, input CreateSessionInput) (CreateSessionOutput, error)
}
