package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-chat-agent/config/sqlite/sqlitetest"
	repo "task-chat-agent/internal/task/repository"
	"task-chat-agent/pkg/log"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	r := New(sqlitetest.New(t), log.NewNop()).(*implRepository)

	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return r
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetTask(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      "u1",
		Title:       "Buy groceries",
		Description: strPtr("milk"),
		Priority:    strPtr("high"),
		DueDate:     &due,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Buy groceries", created.Title)
	assert.False(t, created.IsCompleted)
	require.NotNil(t, created.DueDate)
	assert.True(t, due.Equal(*created.DueDate))
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: created.ID, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, created, got)

	t.Run("other user sees nothing", func(t *testing.T) {
		got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: created.ID, UserID: "u2"})
		require.NoError(t, err)
		assert.Zero(t, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: 9999, UserID: "u1"})
		require.NoError(t, err)
		assert.Zero(t, got.ID)
	})
}

func TestCreateTaskOptionalFieldsNull(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{UserID: "u1", Title: "Plain"})
	require.NoError(t, err)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.Priority)
	assert.Nil(t, created.DueDate)
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	first, err := r.CreateTask(ctx, repo.CreateTaskOptions{UserID: "u1", Title: "first"})
	require.NoError(t, err)
	second, err := r.CreateTask(ctx, repo.CreateTaskOptions{UserID: "u1", Title: "second"})
	require.NoError(t, err)
	_, err = r.CreateTask(ctx, repo.CreateTaskOptions{UserID: "u2", Title: "foreign"})
	require.NoError(t, err)

	_, err = r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: first.ID, UserID: "u1", Title: "first", IsCompleted: true})
	require.NoError(t, err)

	open, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, second.ID, open[0].ID)

	all, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", IncludeCompleted: true})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")
	assert.Equal(t, first.ID, all[1].ID)

	none, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{UserID: "u1", Title: "old", Description: strPtr("d")})
	require.NoError(t, err)

	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          created.ID,
		UserID:      "u1",
		Title:       "new",
		Priority:    strPtr("low"),
		IsCompleted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Nil(t, updated.Description)
	assert.Equal(t, "low", *updated.Priority)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	missing, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: created.ID, UserID: "u2", Title: "hijack"})
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{UserID: "u1", Title: "gone soon"})
	require.NoError(t, err)

	ok, err := r.DeleteTask(ctx, repo.DeleteTaskOptions{ID: created.ID, UserID: "u2"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.DeleteTask(ctx, repo.DeleteTaskOptions{ID: created.ID, UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DeleteTask(ctx, repo.DeleteTaskOptions{ID: created.ID, UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, ok)
}
