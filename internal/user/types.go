package user

import "time"

// DefaultName is reported for users who never set a display name.
const DefaultName = "User"

// User is a registered account.
type User struct {
	ID            string
	Name          *string
	Email         string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Session is a bearer token issued to a User.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Context is the read-only profile used to personalize replies.
type Context struct {
	UserID        string
	Name          string
	Email         string
	EmailVerified bool
	CreatedAt     time.Time
	Preferences   Preferences
	Account       Account
}

type Preferences struct {
	Timezone         string
	Language         string
	TaskNotification bool
}

type Account struct {
	UserType string
	Status   string
}

// --- UseCase Inputs ---

type CreateUserInput struct {
	ID    string
	Name  string
	Email string
}

type CreateSessionInput struct {
	UserID string
	TTL    time.Duration
}

// --- UseCase Outputs ---

type CreateUserOutput struct {
	User User
}

type CreateSessionOutput struct {
	Session Session
}
