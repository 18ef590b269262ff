package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-chat-agent/config"
	"task-chat-agent/config/sqlite"
	"task-chat-agent/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:           "taskctl",
	Short:         "Task Chat Agent operator tool",
	Long:          `taskctl manages the database, serves the MCP tools over stdio and bootstraps users and sessions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// env is what every subcommand needs: configuration, a logger and an open database.
type env struct {
	cfg *config.Config
	l   log.Logger
	db  *sql.DB
}

func (e env) close() {
	if err := sqlite.Disconnect(context.Background(), e.db); err != nil {
		e.l.Warnf(context.Background(), "Failed to close SQLite database: %v", err)
	}
}

// setup loads config and opens the database. When migrate is set, pending
// migrations are applied before returning.
func setup(ctx context.Context, migrate bool) (env, error) {
	cfg, err := config.Load()
	if err != nil {
		return env{}, err
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := sqlite.Connect(ctx, cfg.SQLite)
	if err != nil {
		return env{}, fmt.Errorf("open database: %w", err)
	}

	if migrate {
		if err := sqlite.Migrate(ctx, db, l); err != nil {
			_ = sqlite.Disconnect(ctx, db)
			return env{}, err
		}
	}

	return env{cfg: cfg, l: l, db: db}, nil
}
