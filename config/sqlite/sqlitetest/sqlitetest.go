// Package sqlitetest opens migrated throwaway databases for repository tests.
package sqlitetest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"task-chat-agent/config"
	"task-chat-agent/config/sqlite"
	"task-chat-agent/pkg/log"
)

// New returns a database in t.TempDir() with every migration applied.
// The database is closed when the test finishes.
func New(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Connect(ctx, config.SQLiteConfig{
		Path:          filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns:  4,
		BusyTimeoutMS: 5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Disconnect(ctx, db) })

	require.NoError(t, sqlite.Migrate(ctx, db, log.NewNop()))
	return db
}
