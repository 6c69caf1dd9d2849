package main

import (
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	"github.com/vendordesk/vendordesk/internal/app"
	"github.com/vendordesk/vendordesk/jobs"
)

func newJobsCmd(config func() *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect and trigger background jobs",
	}

	trigger := &cobra.Command{
		Use:   "trigger",
		Short: "Enqueue a job immediately",
	}
	var grace int
	purge := &cobra.Command{
		Use:   "sessions-purge",
		Short: "Delete expired session records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := jobs.NewClient(config().AsynqRedis())
			defer client.Close()

			info, err := client.EnqueueSessionsPurge(cmd.Context(), jobs.SessionsPurgePayload{GraceSeconds: grace})
			if err != nil {
				return fmt.Errorf("enqueue %s: %w", jobs.TaskSessionsPurge, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "enqueued %s id=%s queue=%s\n", info.Type, info.ID, info.Queue)
			return nil
		},
	}
	purge.Flags().IntVar(&grace, "grace", 0, "keep sessions expired less than this many seconds ago")
	trigger.AddCommand(purge)

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show default queue counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			inspector := asynq.NewInspector(config().AsynqRedis())
			defer inspector.Close()

			info, err := inspector.GetQueueInfo(jobs.QueueDefault)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "queue=%s pending=%d active=%d scheduled=%d retry=%d\n",
				info.Queue, info.Pending, info.Active, info.Scheduled, info.Retry)
			return nil
		},
	}

	cmd.AddCommand(trigger, stats)
	return cmd
}
