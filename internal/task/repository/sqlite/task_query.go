package sqlite

import (
	"database/sql"
	"strings"
	"time"

	sqliteDB "task-chat-agent/config/sqlite"
	"task-chat-agent/internal/task"
	repo "task-chat-agent/internal/task/repository"
)

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if !opt.IncludeCompleted {
		conditions = append(conditions, "is_completed = 0")
	}

	return "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY created_at DESC, id DESC", args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (task.Task, error) {
	var (
		t                          task.Task
		description, priority, due sql.NullString
		createdAt, updatedAt       string
	)
	if err := s.Scan(
		&t.ID, &t.UserID, &t.Title, &description, &t.IsCompleted, &priority, &due, &createdAt, &updatedAt,
	); err != nil {
		return task.Task{}, err
	}

	if description.Valid {
		t.Description = &description.String
	}
	if priority.Valid {
		t.Priority = &priority.String
	}
	if due.Valid {
		d, err := sqliteDB.ParseTime(due.String)
		if err != nil {
			return task.Task{}, err
		}
		t.DueDate = &d
	}

	var err error
	if t.CreatedAt, err = sqliteDB.ParseTime(createdAt); err != nil {
		return task.Task{}, err
	}
	if t.UpdatedAt, err = sqliteDB.ParseTime(updatedAt); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: sqliteDB.FormatTime(*t), Valid: true}
}
