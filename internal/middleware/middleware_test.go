package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"task-chat-agent/config"
	"task-chat-agent/internal/model"
	"task-chat-agent/pkg/log"
)

// ── Mocks ──

type mockAuth struct {
	tokens map[string]string
}

func (m mockAuth) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	userID, ok := m.tokens[token]
	if !ok {
		return model.Scope{}, errors.New("invalid session")
	}
	return model.Scope{UserID: userID, SessionToken: token}, nil
}

func newTestRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), mockAuth{tokens: map[string]string{"tok-alice": "alice"}}, cfg)

	r := gin.New()
	r.GET("/users/:user_id/ping", mw.Auth(), mw.RequirePathUser("user_id"), mw.RateLimit(), func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ──

func TestAuth(t *testing.T) {
	r := newTestRouter(config.RateLimitConfig{})

	tests := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{"valid token", "/users/alice/ping", "tok-alice", http.StatusOK},
		{"missing header", "/users/alice/ping", "", http.StatusUnauthorized},
		{"unknown token", "/users/alice/ping", "nope", http.StatusUnauthorized},
		{"other user's path", "/users/bob/ping", "tok-alice", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.path, tt.token)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "alice", w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 with a refill of one per second.
	r := newTestRouter(config.RateLimitConfig{Enabled: true, RequestsPerMin: 60})

	for i := 0; i < 6; i++ {
		assert.Equal(t, http.StatusOK, do(r, "/users/alice/ping", "tok-alice").Code, i)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(r, "/users/alice/ping", "tok-alice").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	r := newTestRouter(config.RateLimitConfig{Enabled: false, RequestsPerMin: 1})

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, do(r, "/users/alice/ping", "tok-alice").Code)
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := newRateLimiter(10)

	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))
}
