// Package primary defines the service interfaces exposed to the CLI and the
// domain types they exchange.
package primary

import "context"

// Department is a top-level grouping of courses, identified by a short
// unique code.
type Department struct {
	ID   string
	Code string
	Name string
}

// DepartmentDraft is the caller-supplied shape for upserting a department.
// Identity is the code; the name is updated in place when the code exists.
type DepartmentDraft struct {
	Code string
	Name string
}

// Target is an individual study task within a week.
type Target struct {
	ID         string
	Serial     int64
	Text       string
	Source     string
	IsComplete bool
}

// Week is a scheduled unit of a course's plan, optionally bound to a
// calendar date (formatted 2006-01-02, empty when unscheduled).
type Week struct {
	ID         string
	Serial     int64
	Text       string
	Date       string
	IsComplete bool
	Targets    []Target
}

// Course is a planned subject of study with its full week/target tree.
type Course struct {
	ID          string
	Department  Department
	Serial      int64
	Name        string
	Description string
	Book        string
	Prompt      string
	Status      CourseStatus
	Weeks       []Week
}

// CoursePreview is the flat listing shape: department is the code, not the
// nested object.
type CoursePreview struct {
	ID         string
	Department string
	Serial     int64
	Name       string
	Status     CourseStatus
}

// CourseDraft describes a course to create. Department is a department code
// that must resolve within the same batch.
type CourseDraft struct {
	Department  string
	Name        string
	Description string
	Book        string
	Prompt      string
}

// TargetDraft describes a target within a week draft.
type TargetDraft struct {
	Serial int64
	Text   string
	Source string
}

// WeekDraft describes a week within a content draft.
type WeekDraft struct {
	Serial  int64
	Text    string
	Targets []TargetDraft
}

// CourseContentDraft fully replaces a course's editable fields and its
// week/target tree.
type CourseContentDraft struct {
	Name        string
	Description string
	Book        string
	Weeks       []WeekDraft
}

// CourseService manages courses and their departments.
type CourseService interface {
	// CreateCourses upserts the given departments and creates the given
	// courses in one atomic batch. An unknown department code fails the
	// whole batch.
	CreateCourses(ctx context.Context, courses []CourseDraft, departments []DepartmentDraft) error

	// GetCourse returns a course with its department and ordered weeks and
	// targets.
	GetCourse(ctx context.Context, courseID string) (*Course, error)

	// ListCourses returns previews of all courses ordered by department
	// code, then serial.
	ListCourses(ctx context.Context) ([]*CoursePreview, error)

	// UpdateContent replaces the course's name/description/book and its
	// entire week/target tree with the draft.
	UpdateContent(ctx context.Context, courseID string, draft CourseContentDraft) error

	// UpdateStatus sets the course status. Setting "active" also lays out
	// the incomplete weeks on consecutive Mondays starting from the
	// current week.
	UpdateStatus(ctx context.Context, courseID string, status string) error
}
