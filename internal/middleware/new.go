package middleware

import (
	"context"

	"task-chat-agent/config"
	"task-chat-agent/internal/model"
	"task-chat-agent/pkg/log"
)

// Authenticator resolves a bearer token to the caller's Scope.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Scope, error)
}

type Middleware struct {
	l       log.Logger
	auth    Authenticator
	limiter *rateLimiter
}

// New creates the shared HTTP middleware. Rate limiting is disabled when
// cfg.Enabled is false.
func New(l log.Logger, auth Authenticator, cfg config.RateLimitConfig) Middleware {
	m := Middleware{l: l, auth: auth}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return m
}
