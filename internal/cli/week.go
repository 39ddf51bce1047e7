package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/mnemona/internal/wire"
)

// WeekCmd returns the week command tree.
func WeekCmd() *cobra.Command {
	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Toggle week completion",
	}

	weekCmd.AddCommand(&cobra.Command{
		Use:   "done [id]",
		Short: "Mark a week complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.WeekService().SetComplete(context.Background(), args[0], true); err != nil {
				return fmt.Errorf("failed to complete week: %w", err)
			}
			fmt.Printf("✓ Week %s marked complete\n", args[0])
			return nil
		},
	})

	weekCmd.AddCommand(&cobra.Command{
		Use:   "undo [id]",
		Short: "Mark a week incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.WeekService().SetComplete(context.Background(), args[0], false); err != nil {
				return fmt.Errorf("failed to reopen week: %w", err)
			}
			fmt.Printf("✓ Week %s marked incomplete\n", args[0])
			return nil
		},
	})

	return weekCmd
}
