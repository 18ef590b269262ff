package http

import (
	"errors"
	"net/http"

	"task-chat-agent/internal/chat"
	"task-chat-agent/internal/conversation"
	pkgErrors "task-chat-agent/pkg/errors"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Unauthorized")

// mapError returns nil for errors that must not be echoed to the caller.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, conversation.ErrConversationNotFound),
		errors.Is(err, conversation.ErrAccessDenied),
		errors.Is(err, conversation.ErrInvalidConversationID):
		return pkgErrors.NewHTTPError(http.StatusNotFound, conversation.ErrConversationNotFound.Error())
	}
	return nil
}
