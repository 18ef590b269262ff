package user

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMissingUserID  = errors.New("user_id is required")
	ErrInvalidEmail   = errors.New("a valid email is required")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateID    = errors.New("user id already exists")
	ErrInvalidSession = errors.New("invalid session")
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidTTL     = errors.New("session ttl must be positive")
)

// Code maps err onto the status code reported by the tool surfaces.
func Code(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidSession), errors.Is(err, ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, ErrMissingUserID), errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidTTL):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
