package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/mnemona/internal/wire"
)

// DepartmentCmd returns the department command tree.
func DepartmentCmd() *cobra.Command {
	departmentCmd := &cobra.Command{
		Use:   "department",
		Short: "Manage departments (course groupings)",
	}

	departmentCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			departments, err := wire.DepartmentService().ListDepartments(ctx)
			if err != nil {
				return fmt.Errorf("failed to list departments: %w", err)
			}

			if len(departments) == 0 {
				fmt.Println("No departments found")
				return nil
			}

			for _, department := range departments {
				fmt.Printf("%-8s %s\n", department.Code, department.Name)
			}
			return nil
		},
	})

	return departmentCmd
}
