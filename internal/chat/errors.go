package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrPersistTurn  = errors.New("failed to persist conversation turn")
)
