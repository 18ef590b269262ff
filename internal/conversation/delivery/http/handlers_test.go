package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-chat-agent/config"
	"task-chat-agent/config/sqlite/sqlitetest"
	"task-chat-agent/internal/conversation"
	convSqlite "task-chat-agent/internal/conversation/repository/sqlite"
	"task-chat-agent/internal/conversation/usecase"
	"task-chat-agent/internal/middleware"
	"task-chat-agent/internal/model"
	"task-chat-agent/pkg/log"
)

// ── Mocks ──

type tokenAuth map[string]string

func (a tokenAuth) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	userID, ok := a[token]
	if !ok {
		return model.Scope{}, errors.New("invalid session")
	}
	return model.Scope{UserID: userID, SessionToken: token}, nil
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*gin.Engine, conversation.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc := usecase.New(l, convSqlite.New(sqlitetest.New(t), l))
	mw := middleware.New(l, tokenAuth{"tok-alice": "alice", "tok-bob": "bob"}, config.RateLimitConfig{})

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/users/:user_id"), New(l, uc), mw)
	return r, uc
}

func seed(t *testing.T, uc conversation.UseCase, userID string, contents ...string) string {
	t.Helper()
	ctx := context.Background()
	sc := model.Scope{UserID: userID}

	turn, err := uc.Create(ctx, sc)
	require.NoError(t, err)
	for i, content := range contents {
		sender := conversation.SenderUser
		var calls json.RawMessage
		if i%2 == 1 {
			sender = conversation.SenderAssistant
			calls = json.RawMessage(`{"tools":[]}`)
		}
		_, err := uc.PersistTurn(ctx, sc, turn, conversation.PersistTurnInput{Sender: sender, Content: content, ToolCalls: calls})
		require.NoError(t, err)
	}
	require.NoError(t, uc.Commit(ctx, turn))
	return turn.Conversation.ID
}

func get(t *testing.T, r http.Handler, path, token string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

// ── Tests ──

func TestList(t *testing.T) {
	r, uc := setup(t)
	first := seed(t, uc, "alice", "hello")
	second := seed(t, uc, "alice", "list tasks")
	seed(t, uc, "bob", "hi")

	code, env := get(t, r, "/api/v1/users/alice/conversations", "tok-alice")
	require.Equal(t, http.StatusOK, code, env.Message)

	var out listResp
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Len(t, out.Conversations, 2)
	assert.ElementsMatch(t, []string{first, second},
		[]string{out.Conversations[0].ID, out.Conversations[1].ID})
	assert.Equal(t, 20, out.Limit)

	code, env = get(t, r, "/api/v1/users/alice/conversations?limit=1&offset=1", "tok-alice")
	require.Equal(t, http.StatusOK, code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Len(t, out.Conversations, 1)
	assert.Equal(t, 1, out.Offset)

	code, _ = get(t, r, "/api/v1/users/alice/conversations", "tok-bob")
	assert.Equal(t, http.StatusForbidden, code)
}

func TestMessages(t *testing.T) {
	r, uc := setup(t)
	id := seed(t, uc, "alice", "add buy milk", "✅ Created task: buy milk")

	t.Run("history in order", func(t *testing.T) {
		code, env := get(t, r, "/api/v1/users/alice/conversations/"+id+"/messages", "tok-alice")
		require.Equal(t, http.StatusOK, code, env.Message)

		var out messagesResp
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, id, out.Conversation.ID)
		require.Len(t, out.Messages, 2)
		assert.Equal(t, "user", out.Messages[0].Sender)
		assert.Equal(t, "assistant", out.Messages[1].Sender)
		assert.JSONEq(t, `{"tools":[]}`, string(out.Messages[1].ToolCalls))
	})

	tests := []struct {
		name string
		path string
	}{
		{"unknown conversation", "/api/v1/users/bob/conversations/" + uuid.NewString() + "/messages"},
		{"someone else's conversation", "/api/v1/users/bob/conversations/" + id + "/messages"},
		{"malformed id", "/api/v1/users/bob/conversations/not-a-uuid/messages"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := get(t, r, tt.path, "tok-bob")
			assert.Equal(t, http.StatusNotFound, code)
			assert.Equal(t, conversation.ErrConversationNotFound.Error(), env.Message)
		})
	}
}
