package usecase

import (
	"context"
	"strings"

	"task-chat-agent/internal/user"
	repo "task-chat-agent/internal/user/repository"
)

// GetContext loads the user's profile with the fixed preference defaults.
func (uc *implUseCase) GetContext(ctx context.Context, userID string) (user.Context, error) {
	if strings.TrimSpace(userID) == "" {
		return user.Context{}, user.ErrMissingUserID
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.GetContext: %v", err)
		return user.Context{}, err
	}
	if u.ID == "" {
		return user.Context{}, user.ErrUserNotFound
	}

	name := user.DefaultName
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		name = *u.Name
	}

	return user.Context{
		UserID:        u.ID,
		Name:          name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		Preferences: user.Preferences{
			Timezone:         "UTC",
			Language:         "en",
			TaskNotification: true,
		},
		Account: user.Account{
			UserType: "individual",
			Status:   "active",
		},
	}, nil
}
