package sqlite

import (
	"database/sql"
	"fmt"

	"task-chat-agent/internal/conversation/repository"
	"task-chat-agent/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for conversations and messages.
func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/sqlite.%s", method)
}
