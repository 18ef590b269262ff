package repository

import "time"

type CreateUserOptions struct {
	ID    string
	Name  *string
	Email string
}

// GetOneUserOptions looks a user up by ID or, when ID is empty, by Email.
type GetOneUserOptions struct {
	ID    string
	Email string
}

type CreateSessionOptions struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
