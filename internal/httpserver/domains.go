package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-chat-agent/internal/agent/orchestrator"
	chatHTTP "task-chat-agent/internal/chat/delivery/http"
	chatUC "task-chat-agent/internal/chat/usecase"
	"task-chat-agent/internal/conversation"
	convHTTP "task-chat-agent/internal/conversation/delivery/http"
	convRepo "task-chat-agent/internal/conversation/repository/sqlite"
	convUC "task-chat-agent/internal/conversation/usecase"
	"task-chat-agent/internal/middleware"
	"task-chat-agent/internal/task"
	taskHTTP "task-chat-agent/internal/task/delivery/http"
	taskRepo "task-chat-agent/internal/task/repository/sqlite"
	taskUC "task-chat-agent/internal/task/usecase"
	"task-chat-agent/internal/user"
	userRepo "task-chat-agent/internal/user/repository/sqlite"
	userUC "task-chat-agent/internal/user/usecase"
)

// Each domain follows the same steps:
//  1. Repository:   repo := domainRepo.New(srv.db, srv.l)
//  2. UseCase:      uc := domainUC.New(srv.l, repo, ...)
//  3. HTTP Handler: h := domainHTTP.New(srv.l, uc)
//  4. Routes:       domainHTTP.RegisterRoutes(group, h, mw)

// setupUserDomain has no routes of its own. Accounts and sessions are created with taskctl.
func (srv HTTPServer) setupUserDomain() user.UseCase {
	return userUC.New(srv.l, userRepo.New(srv.db, srv.l))
}

func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	uc := taskUC.New(srv.l, taskRepo.New(srv.db, srv.l), srv.dateMath)

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, uc), mw)
	srv.l.Infof(ctx, "Task domain registered")
	return uc
}

func (srv HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) conversation.UseCase {
	uc := convUC.New(srv.l, convRepo.New(srv.db, srv.l))

	convHTTP.RegisterRoutes(api.Group("/users/:user_id"), convHTTP.New(srv.l, uc), mw)
	srv.l.Infof(ctx, "Conversation domain registered")
	return uc
}

func (srv HTTPServer) setupChatDomain(
	ctx context.Context,
	api *gin.RouterGroup,
	mw middleware.Middleware,
	tasks task.UseCase,
	users user.UseCase,
	conversations conversation.UseCase,
) {
	decider := orchestrator.New(srv.l, tasks, users, conversations, orchestrator.Config{
		ToolTimeout:       srv.chat.ToolTimeout,
		EnrichmentTimeout: srv.chat.EnrichmentTimeout,
	})
	uc := chatUC.New(srv.l, conversations, decider)

	chatHTTP.RegisterRoutes(api.Group("/users/:user_id"), chatHTTP.New(srv.l, uc), mw)
	srv.l.Infof(ctx, "Chat domain registered")
}
