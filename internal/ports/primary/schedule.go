package primary

import "context"

// CourseHeader is the course identity attached to a schedule entry.
type CourseHeader struct {
	ID         string
	Department string
	Serial     int64
	Name       string
	Status     CourseStatus
}

// ScheduleItem groups the weeks of one course that fall on the queried date.
type ScheduleItem struct {
	Course CourseHeader
	Weeks  []Week
}

// ScheduleService answers "what is planned for this date".
type ScheduleService interface {
	// GetSchedule returns, for a 2006-01-02 date, every course with at
	// least one visible week scheduled on that date. A week is visible if
	// its course is active or complete, or if the course is inactive and
	// the week itself is complete.
	GetSchedule(ctx context.Context, date string) ([]*ScheduleItem, error)
}
