package primary

import "context"

// DepartmentService exposes department reads. Writes happen only through
// the course-creation batch.
type DepartmentService interface {
	// ListDepartments returns all departments ordered by code.
	ListDepartments(ctx context.Context) ([]*Department, error)
}
