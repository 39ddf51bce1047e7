package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/mnemona/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockCourseRepository implements secondary.CourseRepository for testing.
type mockCourseRepository struct {
	courses     map[string]*secondary.CourseRecord
	departments map[string]*secondary.DepartmentRecord // department id -> record
	previews    []*secondary.CoursePreviewRecord

	createBatchErr error
	updateErr      error

	lastBatchCourses     []secondary.CourseDraftRecord
	lastBatchDepartments []secondary.DepartmentRecord
	lastContent          *secondary.CourseContentRecord
	lastStatus           string
	lastActivateID       string
	lastActivateStart    time.Time
}

func newMockCourseRepository() *mockCourseRepository {
	return &mockCourseRepository{
		courses:     make(map[string]*secondary.CourseRecord),
		departments: make(map[string]*secondary.DepartmentRecord),
	}
}

func (m *mockCourseRepository) CreateBatch(ctx context.Context, courses []secondary.CourseDraftRecord, departments []secondary.DepartmentRecord) error {
	if m.createBatchErr != nil {
		return m.createBatchErr
	}
	m.lastBatchCourses = courses
	m.lastBatchDepartments = departments
	return nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id string) (*secondary.CourseRecord, *secondary.DepartmentRecord, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, nil, fmt.Errorf("course %s: %w", id, secondary.ErrNotFound)
	}
	department, ok := m.departments[course.DepartmentID]
	if !ok {
		return nil, nil, fmt.Errorf("department %s: %w", course.DepartmentID, secondary.ErrNotFound)
	}
	return course, department, nil
}

func (m *mockCourseRepository) List(ctx context.Context) ([]*secondary.CoursePreviewRecord, error) {
	return m.previews, nil
}

func (m *mockCourseRepository) UpdateContent(ctx context.Context, id string, content secondary.CourseContentRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastContent = &content
	return nil
}

func (m *mockCourseRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastStatus = status
	return nil
}

func (m *mockCourseRepository) ActivateWithDates(ctx context.Context, id string, start time.Time) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastActivateID = id
	m.lastActivateStart = start
	return nil
}

// mockDepartmentRepository implements secondary.DepartmentRepository for testing.
type mockDepartmentRepository struct {
	departments []*secondary.DepartmentRecord
	listErr     error
}

func (m *mockDepartmentRepository) List(ctx context.Context) ([]*secondary.DepartmentRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.departments, nil
}

// mockWeekRepository implements secondary.WeekRepository for testing.
type mockWeekRepository struct {
	weeks        map[string][]*secondary.WeekRecord // course id -> weeks
	completeErr  error
	lastID       string
	lastComplete bool
}

func newMockWeekRepository() *mockWeekRepository {
	return &mockWeekRepository{
		weeks: make(map[string][]*secondary.WeekRecord),
	}
}

func (m *mockWeekRepository) ListByCourse(ctx context.Context, courseID string) ([]*secondary.WeekRecord, error) {
	return m.weeks[courseID], nil
}

func (m *mockWeekRepository) SetComplete(ctx context.Context, id string, complete bool) error {
	if m.completeErr != nil {
		return m.completeErr
	}
	m.lastID = id
	m.lastComplete = complete
	return nil
}

// mockTargetRepository implements secondary.TargetRepository for testing.
type mockTargetRepository struct {
	targets      map[string][]*secondary.TargetRecord // week id -> targets
	completeErr  error
	lastID       string
	lastComplete bool
}

func newMockTargetRepository() *mockTargetRepository {
	return &mockTargetRepository{
		targets: make(map[string][]*secondary.TargetRecord),
	}
}

func (m *mockTargetRepository) ListByWeeks(ctx context.Context, weekIDs []string) (map[string][]*secondary.TargetRecord, error) {
	result := make(map[string][]*secondary.TargetRecord)
	for _, weekID := range weekIDs {
		if targets, ok := m.targets[weekID]; ok {
			result[weekID] = targets
		}
	}
	return result, nil
}

func (m *mockTargetRepository) SetComplete(ctx context.Context, id string, complete bool) error {
	if m.completeErr != nil {
		return m.completeErr
	}
	m.lastID = id
	m.lastComplete = complete
	return nil
}

// mockScheduleRepository implements secondary.ScheduleRepository for testing.
type mockScheduleRepository struct {
	records  []*secondary.ScheduleWeekRecord
	queryErr error
	lastDate string
}

func (m *mockScheduleRepository) WeeksOn(ctx context.Context, date string) ([]*secondary.ScheduleWeekRecord, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	m.lastDate = date
	return m.records, nil
}
