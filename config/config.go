package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	SQLite SQLiteConfig

	// Chat agent
	Chat      ChatConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig

	// Tool server
	MCP MCPConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path          string
	MaxOpenConns  int
	BusyTimeoutMS int
}

// ChatConfig bounds the downstream calls made while answering one chat turn.
type ChatConfig struct {
	ToolTimeout       time.Duration
	EnrichmentTimeout time.Duration
	RelevantMessages  int
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type AuthConfig struct {
	SessionTTL time.Duration
}

type MCPConfig struct {
	Name    string
	Version string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded into the environment first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	cfg.SQLite.MaxOpenConns = viper.GetInt("sqlite.max_open_conns")
	cfg.SQLite.BusyTimeoutMS = viper.GetInt("sqlite.busy_timeout_ms")

	// Chat agent
	cfg.Chat.ToolTimeout = viper.GetDuration("chat.tool_timeout")
	cfg.Chat.EnrichmentTimeout = viper.GetDuration("chat.enrichment_timeout")
	cfg.Chat.RelevantMessages = viper.GetInt("chat.relevant_messages")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Auth.SessionTTL = viper.GetDuration("auth.session_ttl")

	cfg.MCP.Name = viper.GetString("mcp.name")
	cfg.MCP.Version = viper.GetString("mcp.version")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("sqlite.path", "data/task-chat-agent.db")
	viper.SetDefault("sqlite.max_open_conns", 4)
	viper.SetDefault("sqlite.busy_timeout_ms", 5000)

	viper.SetDefault("chat.tool_timeout", "5s")
	viper.SetDefault("chat.enrichment_timeout", "2s")
	viper.SetDefault("chat.relevant_messages", 10)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("auth.session_ttl", "720h")

	viper.SetDefault("mcp.name", "task-chat-agent")
	viper.SetDefault("mcp.version", "1.0.0")
}

func validate(cfg *Config) error {
	if cfg.SQLite.Path == "" {
		return fmt.Errorf("sqlite.path is required")
	}
	if cfg.Chat.ToolTimeout <= 0 {
		return fmt.Errorf("chat.tool_timeout must be positive")
	}
	if cfg.Chat.EnrichmentTimeout <= 0 {
		return fmt.Errorf("chat.enrichment_timeout must be positive")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}
