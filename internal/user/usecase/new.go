package usecase

import (
	"time"

	"task-chat-agent/internal/user"
	"task-chat-agent/internal/user/repository"
	pkgLog "task-chat-agent/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	now  func() time.Time
}

// New creates a new user UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &implUseCase{l: l, repo: repo, now: time.Now}
}
