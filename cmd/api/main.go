package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-chat-agent/config"
	"task-chat-agent/config/sqlite"
	_ "task-chat-agent/docs" // Swagger docs
	"task-chat-agent/internal/httpserver"
	"task-chat-agent/pkg/datemath"
	"task-chat-agent/pkg/log"
)

// @title       Task Chat Agent API
// @description Conversational task management: chat turns, tasks and conversation history.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Chat Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite database: ", err)
		return
	}
	defer func() {
		if err := sqlite.Disconnect(context.Background(), db); err != nil {
			logger.Warnf(context.Background(), "Failed to close SQLite database: %v", err)
		}
	}()

	if err := sqlite.Migrate(ctx, db, logger); err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	dateMath, err := datemath.NewParser("UTC")
	if err != nil {
		logger.Error(ctx, "Failed to initialize date parser: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		DateMath:    dateMath,
		Chat:        cfg.Chat,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
