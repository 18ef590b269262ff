package repository

import "errors"

var (
	ErrDuplicate      = errors.New("duplicate user")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToGet    = errors.New("failed to get")
)
