package http

import (
	"github.com/gin-gonic/gin"

	"task-chat-agent/internal/model"
	"task-chat-agent/pkg/response"
)

// List godoc
// @Summary     List conversations
// @Description Returns the user's conversations, most recently updated first.
// @Tags        Conversations
// @Produce     json
// @Security    BearerAuth
// @Param       user_id path  string true  "User ID"
// @Param       limit   query int    false "Page size (default 20, max 100)"
// @Param       offset  query int    false "Rows to skip"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/users/{user_id}/conversations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errMissingScope, nil)
		return
	}
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListConversations(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.conversation.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Messages godoc
// @Summary     Conversation history
// @Description Returns every message of a conversation, oldest first.
// @Tags        Conversations
// @Produce     json
// @Security    BearerAuth
// @Param       user_id         path string true "User ID"
// @Param       conversation_id path string true "Conversation ID"
// @Success     200 {object} messagesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{user_id}/conversations/{conversation_id}/messages [GET]
func (h *handler) Messages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errMissingScope, nil)
		return
	}

	out, err := h.uc.History(ctx, sc, c.Param("conversation_id"))
	if err != nil {
		h.l.Warnf(ctx, "internal.conversation.delivery.http.Messages: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMessagesResp(out))
}
