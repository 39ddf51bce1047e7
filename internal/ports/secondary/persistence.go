// Package secondary defines the secondary ports (driven adapters) for the
// application: the repository interfaces the services depend on and the flat
// records they exchange. Implementations live in internal/adapters.
package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnknownDepartment is returned when a course draft names a department
// code that neither exists nor is part of the same batch.
var ErrUnknownDepartment = errors.New("unknown department code")

// DepartmentRecord represents a department as stored in persistence.
type DepartmentRecord struct {
	ID   string
	Code string
	Name string
}

// CourseDraftRecord describes a course to insert. DepartmentCode resolves
// to a department id inside the creation transaction.
type CourseDraftRecord struct {
	DepartmentCode string
	Name           string
	Description    string
	Book           string
	Prompt         string
}

// CourseRecord represents a course row as stored in persistence.
type CourseRecord struct {
	ID           string
	DepartmentID string
	Serial       int64
	Name         string
	Description  string
	Book         string
	Prompt       string
	Status       string
}

// CoursePreviewRecord is the flat listing row (department as code).
type CoursePreviewRecord struct {
	ID             string
	DepartmentCode string
	Serial         int64
	Name           string
	Status         string
}

// WeekRecord represents a week row. Date is 2006-01-02 text, empty when the
// week is unscheduled.
type WeekRecord struct {
	ID         string
	CourseID   string
	Serial     int64
	Text       string
	Date       string
	IsComplete bool
}

// TargetRecord represents a target row.
type TargetRecord struct {
	ID         string
	WeekID     string
	Serial     int64
	Text       string
	Source     string
	IsComplete bool
}

// TargetDraftRecord describes a target to insert during content replacement.
type TargetDraftRecord struct {
	Serial int64
	Text   string
	Source string
}

// WeekDraftRecord describes a week to insert during content replacement.
type WeekDraftRecord struct {
	Serial  int64
	Text    string
	Targets []TargetDraftRecord
}

// CourseContentRecord carries a full-replace content update.
type CourseContentRecord struct {
	Name        string
	Description string
	Book        string
	Weeks       []WeekDraftRecord
}

// ScheduleWeekRecord is one row of the schedule join: a week plus the
// header of its owning course.
type ScheduleWeekRecord struct {
	Week   WeekRecord
	Course CoursePreviewRecord
}

// CourseRepository defines the secondary port for course persistence.
// Every write method runs in one transaction: it commits fully or leaves
// the store untouched.
type CourseRepository interface {
	// CreateBatch upserts departments by code, then inserts each course
	// with a freshly generated per-department serial. Any failure aborts
	// the whole batch.
	CreateBatch(ctx context.Context, courses []CourseDraftRecord, departments []DepartmentRecord) error

	// GetByID retrieves the course row and its department.
	GetByID(ctx context.Context, id string) (*CourseRecord, *DepartmentRecord, error)

	// List retrieves all courses ordered by department code, then serial.
	List(ctx context.Context) ([]*CoursePreviewRecord, error)

	// UpdateContent updates the editable fields and replaces the entire
	// week/target tree with the draft.
	UpdateContent(ctx context.Context, id string, content CourseContentRecord) error

	// UpdateStatus sets the status column only.
	UpdateStatus(ctx context.Context, id, status string) error

	// ActivateWithDates sets status to active and assigns start+7d*i
	// dates to the incomplete weeks in ascending serial order. Complete
	// weeks keep their dates.
	ActivateWithDates(ctx context.Context, id string, start time.Time) error
}

// DepartmentRepository defines the secondary port for department reads.
// Upserts happen inside CourseRepository.CreateBatch so they share its
// transaction.
type DepartmentRepository interface {
	// List retrieves all departments ordered by code.
	List(ctx context.Context) ([]*DepartmentRecord, error)
}

// WeekRepository defines the secondary port for week reads and toggles.
type WeekRepository interface {
	// ListByCourse retrieves a course's weeks ordered by serial.
	ListByCourse(ctx context.Context, courseID string) ([]*WeekRecord, error)

	// SetComplete sets the is_complete flag on a week.
	SetComplete(ctx context.Context, id string, complete bool) error
}

// TargetRepository defines the secondary port for target reads and toggles.
type TargetRepository interface {
	// ListByWeeks retrieves targets keyed by week id, each list ordered
	// by serial.
	ListByWeeks(ctx context.Context, weekIDs []string) (map[string][]*TargetRecord, error)

	// SetComplete sets the is_complete flag on a target.
	SetComplete(ctx context.Context, id string, complete bool) error
}

// ScheduleRepository defines the secondary port for the schedule date join.
type ScheduleRepository interface {
	// WeeksOn retrieves the visible weeks scheduled on the given
	// 2006-01-02 date with their course headers, ordered by department
	// code, course serial, week serial. A week is visible when its course
	// is active or complete, or when the course is inactive and the week
	// itself is complete.
	WeeksOn(ctx context.Context, date string) ([]*ScheduleWeekRecord, error)
}
