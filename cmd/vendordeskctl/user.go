package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendordesk/vendordesk/internal/app"
	"github.com/vendordesk/vendordesk/internal/auth"
	"github.com/vendordesk/vendordesk/internal/platform/db"
)

func newUserCmd(config func() *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an active user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}
			pool, err := db.New(cmd.Context(), config().PGDSN, config().DBOptions())
			if err != nil {
				return err
			}
			defer pool.Close()

			user, err := auth.NewService(auth.NewRepository(pool)).Register(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.ID, user.Email)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "account email")
	create.Flags().StringVar(&password, "password", "", "account password")

	cmd.AddCommand(create)
	return cmd
}
