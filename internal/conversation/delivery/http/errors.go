package http

import (
	"errors"
	"net/http"

	"task-chat-agent/internal/conversation"
	pkgErrors "task-chat-agent/pkg/errors"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Unauthorized")

// mapError reports every lookup failure as not found so ownership is never revealed.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrConversationNotFound),
		errors.Is(err, conversation.ErrAccessDenied),
		errors.Is(err, conversation.ErrInvalidConversationID):
		return pkgErrors.NewHTTPError(http.StatusNotFound, conversation.ErrConversationNotFound.Error())
	case errors.Is(err, conversation.ErrMissingUser):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
