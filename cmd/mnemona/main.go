package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/mnemona/internal/cli"
	"github.com/example/mnemona/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "mnemona",
		Short:   "mnemona - personal course and study schedule planner",
		Version: version.String(),
		Long: `mnemona is a CLI tool for planning courses of study.
Courses belong to departments, carry week-by-week plans with concrete
targets, and appear on the daily schedule once activated.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.CourseCmd())
	rootCmd.AddCommand(cli.DepartmentCmd())
	rootCmd.AddCommand(cli.ScheduleCmd())
	rootCmd.AddCommand(cli.WeekCmd())
	rootCmd.AddCommand(cli.TargetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
