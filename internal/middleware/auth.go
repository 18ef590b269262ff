package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-chat-agent/internal/model"
	"task-chat-agent/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth requires a valid "Authorization: Bearer <token>" header and stores the
// resolved Scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		sc, err := m.auth.Authenticate(ctx, strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// RequirePathUser rejects requests whose :param path segment names a different
// user than the authenticated one. It must run after Auth.
func (m Middleware) RequirePathUser(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sc, ok := model.GetScopeFromContext(ctx)
		if !ok {
			response.Unauthorized(c)
			return
		}
		if c.Param(param) != sc.UserID {
			m.l.Warnf(ctx, "internal.middleware.RequirePathUser: user=%s path=%s", sc.UserID, c.Param(param))
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}
