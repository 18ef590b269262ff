package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	sqliteDB "task-chat-agent/config/sqlite"
	"task-chat-agent/internal/conversation"
	repo "task-chat-agent/internal/conversation/repository"
)

// ListMessages returns every message of a conversation in the order it was written.
func (r *implRepository) ListMessages(ctx context.Context, conversationID string) ([]conversation.Message, error) {
	const query = `
		SELECT id, conversation_id, user_id, sender, content, tool_calls, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	messages := make([]conversation.Message, 0)
	for rows.Next() {
		var (
			m         conversation.Message
			sender    string
			toolCalls sql.NullString
			createdAt string
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.UserID, &sender, &m.Content, &toolCalls, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		m.Sender = conversation.Sender(sender)
		if toolCalls.Valid && toolCalls.String != "" {
			m.ToolCalls = json.RawMessage(toolCalls.String)
		}
		if m.CreatedAt, err = sqliteDB.ParseTime(createdAt); err != nil {
			r.l.Errorf(ctx, "%s created_at: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	return messages, nil
}
