package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vendordesk/vendordesk/internal/app"
	"github.com/vendordesk/vendordesk/internal/auth"
)

func newTokenCmd(config func() *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API bearer tokens",
	}

	var userID string
	var ttl time.Duration
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign a bearer token for a user id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("--user is required")
			}
			cfg := config()
			if ttl <= 0 {
				ttl = cfg.JWTTTL
			}
			token, expiresAt, err := auth.NewTokenIssuer(cfg.JWTSecret, ttl).Issue(userID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, token)
			fmt.Fprintf(out, "expires %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
	issue.Flags().StringVar(&userID, "user", "", "user id the token identifies")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_TTL)")

	cmd.AddCommand(issue)
	return cmd
}
