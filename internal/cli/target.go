package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/mnemona/internal/wire"
)

// TargetCmd returns the target command tree.
func TargetCmd() *cobra.Command {
	targetCmd := &cobra.Command{
		Use:   "target",
		Short: "Toggle target completion",
	}

	targetCmd.AddCommand(&cobra.Command{
		Use:   "done [id]",
		Short: "Mark a target complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.TargetService().SetComplete(context.Background(), args[0], true); err != nil {
				return fmt.Errorf("failed to complete target: %w", err)
			}
			fmt.Printf("✓ Target %s marked complete\n", args[0])
			return nil
		},
	})

	targetCmd.AddCommand(&cobra.Command{
		Use:   "undo [id]",
		Short: "Mark a target incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.TargetService().SetComplete(context.Background(), args[0], false); err != nil {
				return fmt.Errorf("failed to reopen target: %w", err)
			}
			fmt.Printf("✓ Target %s marked incomplete\n", args[0])
			return nil
		},
	})

	return targetCmd
}
