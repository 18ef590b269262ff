package usecase

import (
	"time"

	"github.com/google/uuid"

	"task-chat-agent/internal/conversation"
	"task-chat-agent/internal/conversation/repository"
	pkgLog "task-chat-agent/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	now   func() time.Time
	newID func() string
}

// New creates a new conversation UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) conversation.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
