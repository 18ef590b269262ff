package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sqliteDB "task-chat-agent/config/sqlite"
	"task-chat-agent/internal/task"
	repo "task-chat-agent/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, is_completed, priority, due_date, created_at, updated_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	const query = `
		INSERT INTO tasks (user_id, title, description, is_completed, priority, due_date, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?, ?, ?)
		RETURNING ` + taskColumns

	now := sqliteDB.FormatTime(r.now())
	row := r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.Title, nullString(opt.Description), nullString(opt.Priority), nullTime(opt.DueDate), now, now,
	)

	t, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task owned by opt.UserID.
// Returns zero-value Task (ID == 0) when not found; do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ? LIMIT 1`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the user's Tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	mods, args := r.buildListQuery(opt)
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks `+mods, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites a Task's mutable fields and returns the updated entity.
// Returns zero-value Task when no row matched.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, is_completed = ?, priority = ?, due_date = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING ` + taskColumns

	row := r.db.QueryRowContext(ctx, query,
		opt.Title, nullString(opt.Description), opt.IsCompleted, nullString(opt.Priority), nullTime(opt.DueDate),
		sqliteDB.FormatTime(r.now()), opt.ID, opt.UserID,
	)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task and reports whether a row was deleted.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
