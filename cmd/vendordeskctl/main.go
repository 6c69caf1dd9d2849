package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vendordesk/vendordesk/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *app.Config
	root := &cobra.Command{
		Use:           "vendordeskctl",
		Short:         "Administrative commands for vendordesk",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			return nil
		},
	}
	config := func() *app.Config { return cfg }
	root.AddCommand(newUserCmd(config), newTokenCmd(config), newJobsCmd(config))
	return root
}
