package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"task-chat-agent/internal/user"
	userRepo "task-chat-agent/internal/user/repository/sqlite"
	userUC "task-chat-agent/internal/user/usecase"
)

var (
	userName   string
	userEmail  string
	userID     string
	sessionFor string
	sessionTTL time.Duration
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.close()

		uc := userUC.New(e.l, userRepo.New(e.db, e.l))
		out, err := uc.CreateUser(cmd.Context(), user.CreateUserInput{ID: userID, Name: userName, Email: userEmail})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out.User.ID)
		return nil
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage bearer sessions",
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Issue a bearer token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.close()

		ttl := sessionTTL
		if ttl == 0 {
			ttl = e.cfg.Auth.SessionTTL
		}

		uc := userUC.New(e.l, userRepo.New(e.db, e.l))
		out, err := uc.CreateSession(cmd.Context(), user.CreateSessionInput{UserID: sessionFor, TTL: ttl})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out.Session.Token)
		e.l.Infof(cmd.Context(), "Session for %s expires at %s", sessionFor, out.Session.ExpiresAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userName, "name", "", "display name")
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "email address")
	userCreateCmd.Flags().StringVar(&userID, "id", "", "user id (generated when empty)")
	_ = userCreateCmd.MarkFlagRequired("email")
	userCmd.AddCommand(userCreateCmd)

	sessionCreateCmd.Flags().StringVar(&sessionFor, "user", "", "user id")
	sessionCreateCmd.Flags().DurationVar(&sessionTTL, "ttl", 0, "session lifetime (default auth.session_ttl)")
	_ = sessionCreateCmd.MarkFlagRequired("user")
	sessionCmd.AddCommand(sessionCreateCmd)

	rootCmd.AddCommand(userCmd, sessionCmd)
}
