package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/mnemona/internal/wire"
)

// ScheduleCmd returns the schedule command.
func ScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [date]",
		Short: "Show the study plan for a date (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			date := time.Now().Format("2006-01-02")
			if len(args) == 1 {
				date = args[0]
			}

			items, err := wire.ScheduleService().GetSchedule(ctx, date)
			if err != nil {
				return fmt.Errorf("failed to get schedule: %w", err)
			}

			if len(items) == 0 {
				fmt.Printf("Nothing scheduled for %s\n", date)
				return nil
			}

			fmt.Printf("Schedule for %s:\n", date)
			for _, item := range items {
				fmt.Println()
				fmt.Printf("%s-%d %s [%s]\n",
					item.Course.Department, item.Course.Serial,
					item.Course.Name, statusLabel(item.Course.Status))
				for _, week := range item.Weeks {
					fmt.Printf("  Week %d: %s%s\n", week.Serial, week.Text, doneMarker(week.IsComplete))
					for _, target := range week.Targets {
						fmt.Printf("    %d. %s%s\n", target.Serial, target.Text, doneMarker(target.IsComplete))
					}
				}
			}
			return nil
		},
	}
}
