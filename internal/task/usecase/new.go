package usecase

import (
	"time"

	"task-chat-agent/internal/task"
	"task-chat-agent/internal/task/repository"
	"task-chat-agent/pkg/datemath"
	pkgLog "task-chat-agent/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser) task.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
	}
}
