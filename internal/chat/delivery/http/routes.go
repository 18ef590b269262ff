package http

import (
	"github.com/gin-gonic/gin"

	"task-chat-agent/internal/middleware"
)

// RegisterRoutes mounts POST /chat on rg, which is expected to be the /users/:user_id group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), mw.RequirePathUser("user_id"), mw.RateLimit(), h.Chat)
}
