package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToList   = errors.New("failed to list")
	ErrFailedToCommit = errors.New("failed to commit turn")
)
