package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqliteDB "task-chat-agent/config/sqlite"
	"task-chat-agent/internal/conversation"
	repo "task-chat-agent/internal/conversation/repository"
)

// GetConversation returns a zero-value Conversation (ID == "") when not found.
func (r *implRepository) GetConversation(ctx context.Context, id string) (conversation.Conversation, error) {
	const query = `SELECT id, user_id, created_at, updated_at FROM conversations WHERE id = ?`

	c, err := scanConversation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return conversation.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetConversation"), err)
		return conversation.Conversation{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListConversations returns the user's conversations, most recently updated first.
func (r *implRepository) ListConversations(ctx context.Context, opt repo.ListConversationsOptions) ([]conversation.Conversation, error) {
	const query = `
		SELECT id, user_id, created_at, updated_at FROM conversations
		WHERE user_id = ?
		ORDER BY updated_at DESC, id DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListConversations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := make([]conversation.Conversation, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListConversations"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListConversations"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// CommitTurn inserts or touches the conversation and appends the staged messages.
// Either everything is written or nothing is.
func (r *implRepository) CommitTurn(ctx context.Context, opt repo.CommitTurnOptions) error {
	if err := r.commitTurn(ctx, opt); err != nil {
		r.l.Errorf(ctx, "%s: conversation=%s: %v", r.dsn("CommitTurn"), opt.Conversation.ID, err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToCommit, err)
	}
	return nil
}

func (r *implRepository) commitTurn(ctx context.Context, opt repo.CommitTurnOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	c := opt.Conversation
	if opt.IsNew {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO conversations (id, user_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			c.ID, c.UserID, sqliteDB.FormatTime(c.CreatedAt), sqliteDB.FormatTime(opt.UpdatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert conversation: %w", err)
		}
	} else {
		res, err := tx.ExecContext(ctx,
			`UPDATE conversations SET updated_at = ? WHERE id = ? AND user_id = ?`,
			sqliteDB.FormatTime(opt.UpdatedAt), c.ID, c.UserID,
		)
		if err != nil {
			return fmt.Errorf("touch conversation: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil || n != 1 {
			return fmt.Errorf("touch conversation: %d rows affected: %v", n, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO messages (id, conversation_id, user_id, sender, content, tool_calls, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare message insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range opt.Messages {
		var toolCalls sql.NullString
		if len(m.ToolCalls) > 0 {
			toolCalls = sql.NullString{String: string(m.ToolCalls), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			m.ID, m.ConversationID, m.UserID, string(m.Sender), m.Content, toolCalls, sqliteDB.FormatTime(m.CreatedAt),
		); err != nil {
			return fmt.Errorf("insert message %s: %w", m.ID, err)
		}
	}

	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversation(s scanner) (conversation.Conversation, error) {
	var (
		c                    conversation.Conversation
		createdAt, updatedAt string
	)
	if err := s.Scan(&c.ID, &c.UserID, &createdAt, &updatedAt); err != nil {
		return conversation.Conversation{}, err
	}

	var err error
	if c.CreatedAt, err = sqliteDB.ParseTime(createdAt); err != nil {
		return conversation.Conversation{}, err
	}
	if c.UpdatedAt, err = sqliteDB.ParseTime(updatedAt); err != nil {
		return conversation.Conversation{}, err
	}
	return c, nil
}
