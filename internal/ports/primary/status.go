package primary

import (
	"errors"
	"fmt"
)

// CourseStatus is the lifecycle state of a course, stored as lowercase text.
type CourseStatus string

const (
	StatusDraft    CourseStatus = "draft"
	StatusInactive CourseStatus = "inactive"
	StatusActive   CourseStatus = "active"
	StatusComplete CourseStatus = "complete"
)

// ErrInvalidStatus is returned when a status string is not one of the four
// recognized values.
var ErrInvalidStatus = errors.New("invalid course status")

// ParseCourseStatus validates a stored or user-supplied status string.
// Unrecognized text fails instead of defaulting.
func ParseCourseStatus(s string) (CourseStatus, error) {
	switch CourseStatus(s) {
	case StatusDraft, StatusInactive, StatusActive, StatusComplete:
		return CourseStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s CourseStatus) String() string {
	return string(s)
}
