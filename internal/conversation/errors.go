package conversation

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidConversationID = errors.New("invalid conversation id")
	ErrConversationNotFound  = errors.New("conversation not found")
	ErrAccessDenied          = errors.New("access denied: conversation does not belong to user")
	ErrEmptyContent          = errors.New("message content cannot be empty")
	ErrInvalidSender         = errors.New("message sender must be user or assistant")
	ErrMissingUser           = errors.New("user id is required")
	ErrNilTurn               = errors.New("turn is required")
)

// Code maps err onto the status code reported by the tool surfaces.
// A conversation owned by someone else is reported as not found.
func Code(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrConversationNotFound), errors.Is(err, ErrAccessDenied):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidConversationID),
		errors.Is(err, ErrEmptyContent),
		errors.Is(err, ErrInvalidSender),
		errors.Is(err, ErrMissingUser):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
