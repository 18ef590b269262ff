package http

import (
	"github.com/gin-gonic/gin"

	"task-chat-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route requires an authenticated session and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth(), mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/complete", h.Complete)
	}
}
