package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-chat-agent/config/sqlite/sqlitetest"
	"task-chat-agent/internal/user"
	"task-chat-agent/internal/user/repository/sqlite"
	"task-chat-agent/pkg/log"
)

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	return New(log.NewNop(), sqlite.New(sqlitetest.New(t), log.NewNop())).(*implUseCase)
}

func TestCreateUserAndGetContext(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	out, err := uc.CreateUser(ctx, user.CreateUserInput{ID: "alice", Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.User.ID)

	got, err := uc.GetContext(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.False(t, got.EmailVerified)
	assert.Equal(t, user.Preferences{Timezone: "UTC", Language: "en", TaskNotification: true}, got.Preferences)
	assert.Equal(t, user.Account{UserType: "individual", Status: "active"}, got.Account)

	t.Run("unnamed user gets default name", func(t *testing.T) {
		out, err := uc.CreateUser(ctx, user.CreateUserInput{Email: "anon@example.com"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.User.ID)

		got, err := uc.GetContext(ctx, out.User.ID)
		require.NoError(t, err)
		assert.Equal(t, user.DefaultName, got.Name)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := uc.CreateUser(ctx, user.CreateUserInput{Email: "alice@example.com"})
		assert.ErrorIs(t, err, user.ErrDuplicateEmail)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := uc.CreateUser(ctx, user.CreateUserInput{ID: "alice", Email: "other@example.com"})
		assert.ErrorIs(t, err, user.ErrDuplicateID)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := uc.CreateUser(ctx, user.CreateUserInput{Email: "not-an-email"})
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.GetContext(ctx, "ghost")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	_, err := uc.CreateUser(ctx, user.CreateUserInput{ID: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	out, err := uc.CreateSession(ctx, user.CreateSessionInput{UserID: "bob", TTL: time.Hour})
	require.NoError(t, err)
	require.NotEmpty(t, out.Session.Token)

	sc, err := uc.Authenticate(ctx, out.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob", sc.UserID)
	assert.Equal(t, out.Session.Token, sc.SessionToken)

	_, err = uc.Authenticate(ctx, "nope")
	assert.ErrorIs(t, err, user.ErrInvalidSession)

	_, err = uc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, user.ErrInvalidSession)

	uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = uc.Authenticate(ctx, out.Session.Token)
	assert.ErrorIs(t, err, user.ErrSessionExpired)

	_, err = uc.CreateSession(ctx, user.CreateSessionInput{UserID: "ghost", TTL: time.Hour})
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = uc.CreateSession(ctx, user.CreateSessionInput{UserID: "bob"})
	assert.ErrorIs(t, err, user.ErrInvalidTTL)
}
