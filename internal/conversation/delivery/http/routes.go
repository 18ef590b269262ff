package http

import (
	"github.com/gin-gonic/gin"

	"task-chat-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// rg is expected to be the /users/:user_id group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	conversations := rg.Group("/conversations", mw.Auth(), mw.RequirePathUser("user_id"), mw.RateLimit())
	{
		conversations.GET("", h.List)
		conversations.GET("/:conversation_id/messages", h.Messages)
	}
}
