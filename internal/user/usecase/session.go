package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"task-chat-agent/internal/model"
	"task-chat-agent/internal/user"
	repo "task-chat-agent/internal/user/repository"
)

// Authenticate resolves a bearer token issued by CreateSession.
func (uc *implUseCase) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.Scope{}, user.ErrInvalidSession
	}

	s, err := uc.repo.GetSession(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Authenticate: %v", err)
		return model.Scope{}, err
	}
	if s.Token == "" {
		return model.Scope{}, user.ErrInvalidSession
	}
	if !uc.now().Before(s.ExpiresAt) {
		return model.Scope{}, user.ErrSessionExpired
	}

	return model.Scope{UserID: s.UserID, SessionToken: s.Token}, nil
}

// CreateUser registers a user. A random id is assigned when input.ID is empty.
func (uc *implUseCase) CreateUser(ctx context.Context, input user.CreateUserInput) (user.CreateUserOutput, error) {
	email := strings.TrimSpace(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return user.CreateUserOutput{}, user.ErrInvalidEmail
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.CreateUser GetOneUser: %v", err)
		return user.CreateUserOutput{}, err
	}
	if existing.ID != "" {
		return user.CreateUserOutput{}, user.ErrDuplicateEmail
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.NewString()
	}
	var name *string
	if n := strings.TrimSpace(input.Name); n != "" {
		name = &n
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{ID: id, Name: name, Email: email})
	if errors.Is(err, repo.ErrDuplicate) {
		return user.CreateUserOutput{}, user.ErrDuplicateID
	}
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.CreateUser: %v", err)
		return user.CreateUserOutput{}, err
	}
	return user.CreateUserOutput{User: u}, nil
}

// CreateSession issues a new bearer token for an existing user.
func (uc *implUseCase) CreateSession(ctx context.Context, input user.CreateSessionInput) (user.CreateSessionOutput, error) {
	if input.TTL <= 0 {
		return user.CreateSessionOutput{}, user.ErrInvalidTTL
	}
	if _, err := uc.GetContext(ctx, input.UserID); err != nil {
		return user.CreateSessionOutput{}, err
	}

	s, err := uc.repo.CreateSession(ctx, repo.CreateSessionOptions{
		Token:     uuid.NewString(),
		UserID:    input.UserID,
		ExpiresAt: uc.now().Add(input.TTL),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.CreateSession: %v", err)
		return user.CreateSessionOutput{}, err
	}

	uc.l.Infof(ctx, "internal.user.usecase.CreateSession: user=%s expires=%s", s.UserID, s.ExpiresAt)
	return user.CreateSessionOutput{Session: s}, nil
}
