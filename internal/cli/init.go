package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/mnemona/internal/db"
)

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the mnemona database",
		Long:  `Initialize the mnemona database at ~/.mnemona/mnemona.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing mnemona database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  mnemona course create \"Operating Systems\" --dept CS --dept-name \"Computer Science\"")
			fmt.Println("  mnemona schedule")

			return nil
		},
	}
}
