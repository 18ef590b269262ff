package http

import (
	"github.com/gin-gonic/gin"

	"task-chat-agent/internal/model"
	"task-chat-agent/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Answers one message. Omit conversation_id to start a new conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       user_id path string  true "User ID"
// @Param       body    body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{user_id}/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, errMissingScope, nil)
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		if httpErr := h.mapError(err); httpErr != nil {
			response.Error(c, httpErr, nil)
			return
		}
		h.l.Errorf(ctx, "internal.chat.delivery.http.Chat: user=%s: %v", sc.UserID, err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(out))
}
