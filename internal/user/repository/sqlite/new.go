package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"task-chat-agent/internal/user/repository"
	"task-chat-agent/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed Repository for users and sessions.
func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/sqlite.%s", method)
}
