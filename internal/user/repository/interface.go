package repository

import (
	"context"

	"task-chat-agent/internal/user"
)

//go:generate mockery --name Repository
type Repository interface {
	UserRepository
	SessionRepository
}

type UserRepository interface {
	// CreateUser inserts a user. Returns ErrDuplicate when the id or email is taken.
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	// GetOneUser returns a zero-value User when not found.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (user.Session, error)
	// GetSession returns a zero-value Session when not found.
	GetSession(ctx context.Context, token string) (user.Session, error)
}
