package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sqliteDB "task-chat-agent/config/sqlite"
	"task-chat-agent/internal/user"
	repo "task-chat-agent/internal/user/repository"
)

// CreateUser inserts a new user row.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	const query = `
		INSERT INTO users (id, name, email, email_verified, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?)
		RETURNING id, name, email, email_verified, created_at, updated_at`

	now := sqliteDB.FormatTime(r.now())
	var name sql.NullString
	if opt.Name != nil {
		name = sql.NullString{String: *opt.Name, Valid: true}
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.ID, name, opt.Email, now, now))
	if err != nil {
		if sqliteDB.IsUniqueViolation(err) {
			return user.User{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser returns a zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	query := `SELECT id, name, email, email_verified, created_at, updated_at FROM users WHERE id = ?`
	arg := opt.ID
	if opt.ID == "" {
		query = `SELECT id, name, email, email_verified, created_at, updated_at FROM users WHERE email = ?`
		arg = opt.Email
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// CreateSession stores a bearer token.
func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (user.Session, error) {
	const query = `INSERT INTO sessions (token, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)`

	s := user.Session{
		Token:     opt.Token,
		UserID:    opt.UserID,
		ExpiresAt: opt.ExpiresAt.UTC(),
		CreatedAt: r.now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, query,
		s.Token, s.UserID, sqliteDB.FormatTime(s.ExpiresAt), sqliteDB.FormatTime(s.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return user.Session{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// GetSession returns a zero-value Session when the token is unknown.
func (r *implRepository) GetSession(ctx context.Context, token string) (user.Session, error) {
	const query = `SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = ?`

	var (
		s                    user.Session
		expiresAt, createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, token).Scan(&s.Token, &s.UserID, &expiresAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Session{}, nil
	}
	if err == nil {
		s.ExpiresAt, err = sqliteDB.ParseTime(expiresAt)
	}
	if err == nil {
		s.CreatedAt, err = sqliteDB.ParseTime(createdAt)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return user.Session{}, repo.ErrFailedToGet
	}
	return s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (user.User, error) {
	var (
		u                    user.User
		name                 sql.NullString
		createdAt, updatedAt string
	)
	if err := s.Scan(&u.ID, &name, &u.Email, &u.EmailVerified, &createdAt, &updatedAt); err != nil {
		return user.User{}, err
	}
	if name.Valid {
		u.Name = &name.String
	}

	var err error
	if u.CreatedAt, err = sqliteDB.ParseTime(createdAt); err != nil {
		return user.User{}, err
	}
	if u.UpdatedAt, err = sqliteDB.ParseTime(updatedAt); err != nil {
		return user.User{}, err
	}
	return u, nil
}
