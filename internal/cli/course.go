package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/mnemona/internal/ports/primary"
	"github.com/example/mnemona/internal/wire"
)

// courseFile is the JSON shape accepted by `course import`.
type courseFile struct {
	Departments []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"departments"`
	Courses []struct {
		Department  string `json:"department"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Book        string `json:"book"`
		Prompt      string `json:"prompt"`
	} `json:"courses"`
}

// contentFile is the JSON shape accepted by `course edit`.
type contentFile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Book        string `json:"book"`
	Weeks       []struct {
		Serial  int64  `json:"serial"`
		Text    string `json:"text"`
		Targets []struct {
			Serial int64  `json:"serial"`
			Text   string `json:"text"`
			Source string `json:"source"`
		} `json:"targets"`
	} `json:"weeks"`
}

// CourseCmd returns the course command tree.
func CourseCmd() *cobra.Command {
	courseCmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses and their study plans",
	}

	courseCmd.AddCommand(courseCreateCmd())
	courseCmd.AddCommand(courseImportCmd())
	courseCmd.AddCommand(courseListCmd())
	courseCmd.AddCommand(courseShowCmd())
	courseCmd.AddCommand(courseEditCmd())
	courseCmd.AddCommand(courseStatusCmd())

	return courseCmd
}

func courseCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a course in a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			departmentCode, _ := cmd.Flags().GetString("dept")
			departmentName, _ := cmd.Flags().GetString("dept-name")
			description, _ := cmd.Flags().GetString("description")
			book, _ := cmd.Flags().GetString("book")
			prompt, _ := cmd.Flags().GetString("prompt")

			var departments []primary.DepartmentDraft
			if departmentName != "" {
				departments = append(departments, primary.DepartmentDraft{
					Code: departmentCode,
					Name: departmentName,
				})
			}

			err := wire.CourseService().CreateCourses(ctx,
				[]primary.CourseDraft{{
					Department:  departmentCode,
					Name:        args[0],
					Description: description,
					Book:        book,
					Prompt:      prompt,
				}},
				departments,
			)
			if err != nil {
				return fmt.Errorf("failed to create course: %w", err)
			}

			fmt.Printf("✓ Created course %s in %s\n", args[0], departmentCode)
			return nil
		},
	}

	cmd.Flags().String("dept", "", "Department code (required)")
	cmd.Flags().String("dept-name", "", "Department name, creates or renames the department")
	cmd.Flags().String("description", "", "Course description")
	cmd.Flags().String("book", "", "Reference book")
	cmd.Flags().String("prompt", "", "Study prompt")
	cmd.MarkFlagRequired("dept")

	return cmd
}

func courseImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Create departments and courses from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var file courseFile
			if err := json.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			departments := make([]primary.DepartmentDraft, len(file.Departments))
			for i, department := range file.Departments {
				departments[i] = primary.DepartmentDraft{
					Code: department.Code,
					Name: department.Name,
				}
			}

			courses := make([]primary.CourseDraft, len(file.Courses))
			for i, course := range file.Courses {
				courses[i] = primary.CourseDraft{
					Department:  course.Department,
					Name:        course.Name,
					Description: course.Description,
					Book:        course.Book,
					Prompt:      course.Prompt,
				}
			}

			if err := wire.CourseService().CreateCourses(ctx, courses, departments); err != nil {
				return fmt.Errorf("failed to import courses: %w", err)
			}

			fmt.Printf("✓ Imported %d course(s) and %d department(s)\n", len(courses), len(departments))
			return nil
		},
	}
}

func courseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			previews, err := wire.CourseService().ListCourses(ctx)
			if err != nil {
				return fmt.Errorf("failed to list courses: %w", err)
			}

			if len(previews) == 0 {
				fmt.Println("No courses found")
				return nil
			}

			for _, preview := range previews {
				fmt.Printf("%s %s-%d  %s [%s]\n",
					preview.ID, preview.Department, preview.Serial,
					preview.Name, statusLabel(preview.Status))
			}
			return nil
		},
	}
}

func courseShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a course with its weeks and targets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			course, err := wire.CourseService().GetCourse(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get course: %w", err)
			}

			fmt.Printf("%s-%d %s [%s]\n", course.Department.Code, course.Serial, course.Name, statusLabel(course.Status))
			fmt.Printf("Department: %s (%s)\n", course.Department.Name, course.Department.Code)
			if course.Description != "" {
				fmt.Printf("Description: %s\n", course.Description)
			}
			if course.Book != "" {
				fmt.Printf("Book: %s\n", course.Book)
			}

			for _, week := range course.Weeks {
				fmt.Println()
				date := week.Date
				if date == "" {
					date = "unscheduled"
				}
				fmt.Printf("Week %d (%s): %s%s\n", week.Serial, date, week.Text, doneMarker(week.IsComplete))
				for _, target := range week.Targets {
					source := ""
					if target.Source != "" {
						source = fmt.Sprintf(" (%s)", target.Source)
					}
					fmt.Printf("  %d. %s%s%s\n", target.Serial, target.Text, source, doneMarker(target.IsComplete))
				}
			}
			return nil
		},
	}
}

func courseEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [id] [file]",
		Short: "Replace a course's content and study plan from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[1], err)
			}

			var file contentFile
			if err := json.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[1], err)
			}

			draft := primary.CourseContentDraft{
				Name:        file.Name,
				Description: file.Description,
				Book:        file.Book,
			}
			for _, week := range file.Weeks {
				weekDraft := primary.WeekDraft{Serial: week.Serial, Text: week.Text}
				for _, target := range week.Targets {
					weekDraft.Targets = append(weekDraft.Targets, primary.TargetDraft{
						Serial: target.Serial,
						Text:   target.Text,
						Source: target.Source,
					})
				}
				draft.Weeks = append(draft.Weeks, weekDraft)
			}

			if err := wire.CourseService().UpdateContent(ctx, args[0], draft); err != nil {
				return fmt.Errorf("failed to update course: %w", err)
			}

			fmt.Printf("✓ Updated course %s (%d week(s))\n", args[0], len(draft.Weeks))
			return nil
		},
	}
}

func courseStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [id] [draft|inactive|active|complete]",
		Short: "Change a course's status",
		Long:  "Change a course's status. Activating a course schedules its incomplete weeks on consecutive Mondays starting this week.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := wire.CourseService().UpdateStatus(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}

			fmt.Printf("✓ Course %s is now %s\n", args[0], args[1])
			return nil
		},
	}
}

// statusLabel colors a course status for terminal output.
func statusLabel(status primary.CourseStatus) string {
	switch status {
	case primary.StatusActive:
		return color.New(color.FgHiGreen).Sprint(status)
	case primary.StatusComplete:
		return color.New(color.FgHiBlue).Sprint(status)
	case primary.StatusInactive:
		return color.New(color.FgYellow).Sprint(status)
	default:
		return status.String()
	}
}

// doneMarker renders the completion checkmark suffix.
func doneMarker(complete bool) string {
	if !complete {
		return ""
	}
	return color.New(color.FgHiGreen).Sprint(" ✓")
}
