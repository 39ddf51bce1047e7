package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/mnemona/internal/ports/primary"
	"github.com/example/mnemona/internal/ports/secondary"
)

// CourseServiceImpl implements the CourseService interface.
type CourseServiceImpl struct {
	courseRepo secondary.CourseRepository
	weekRepo   secondary.WeekRepository
	targetRepo secondary.TargetRepository
	now        func() time.Time
}

// NewCourseService creates a new CourseService with injected dependencies.
func NewCourseService(
	courseRepo secondary.CourseRepository,
	weekRepo secondary.WeekRepository,
	targetRepo secondary.TargetRepository,
) *CourseServiceImpl {
	return &CourseServiceImpl{
		courseRepo: courseRepo,
		weekRepo:   weekRepo,
		targetRepo: targetRepo,
		now:        time.Now,
	}
}

// CreateCourses upserts departments and creates courses in one atomic batch.
func (s *CourseServiceImpl) CreateCourses(ctx context.Context, courses []primary.CourseDraft, departments []primary.DepartmentDraft) error {
	courseRecords := make([]secondary.CourseDraftRecord, len(courses))
	for i, draft := range courses {
		courseRecords[i] = secondary.CourseDraftRecord{
			DepartmentCode: draft.Department,
			Name:           draft.Name,
			Description:    draft.Description,
			Book:           draft.Book,
			Prompt:         draft.Prompt,
		}
	}

	departmentRecords := make([]secondary.DepartmentRecord, len(departments))
	for i, draft := range departments {
		departmentRecords[i] = secondary.DepartmentRecord{
			Code: draft.Code,
			Name: draft.Name,
		}
	}

	if err := s.courseRepo.CreateBatch(ctx, courseRecords, departmentRecords); err != nil {
		return fmt.Errorf("failed to create courses: %w", err)
	}
	return nil
}

// GetCourse retrieves a course with its department and full week/target tree.
func (s *CourseServiceImpl) GetCourse(ctx context.Context, courseID string) (*primary.Course, error) {
	courseRecord, departmentRecord, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	status, err := primary.ParseCourseStatus(courseRecord.Status)
	if err != nil {
		return nil, fmt.Errorf("course %s has corrupt status: %w", courseID, err)
	}

	weekRecords, err := s.weekRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weeks: %w", err)
	}

	weekIDs := make([]string, len(weekRecords))
	for i, week := range weekRecords {
		weekIDs[i] = week.ID
	}

	targetsByWeek, err := s.targetRepo.ListByWeeks(ctx, weekIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load targets: %w", err)
	}

	weeks := make([]primary.Week, len(weekRecords))
	for i, record := range weekRecords {
		weeks[i] = weekFromRecord(record, targetsByWeek[record.ID])
	}

	return &primary.Course{
		ID: courseRecord.ID,
		Department: primary.Department{
			ID:   departmentRecord.ID,
			Code: departmentRecord.Code,
			Name: departmentRecord.Name,
		},
		Serial:      courseRecord.Serial,
		Name:        courseRecord.Name,
		Description: courseRecord.Description,
		Book:        courseRecord.Book,
		Prompt:      courseRecord.Prompt,
		Status:      status,
		Weeks:       weeks,
	}, nil
}

// ListCourses retrieves previews of all courses.
func (s *CourseServiceImpl) ListCourses(ctx context.Context) ([]*primary.CoursePreview, error) {
	records, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	previews := make([]*primary.CoursePreview, len(records))
	for i, record := range records {
		status, err := primary.ParseCourseStatus(record.Status)
		if err != nil {
			return nil, fmt.Errorf("course %s has corrupt status: %w", record.ID, err)
		}
		previews[i] = &primary.CoursePreview{
			ID:         record.ID,
			Department: record.DepartmentCode,
			Serial:     record.Serial,
			Name:       record.Name,
			Status:     status,
		}
	}

	return previews, nil
}

// UpdateContent replaces the course's editable fields and week/target tree.
func (s *CourseServiceImpl) UpdateContent(ctx context.Context, courseID string, draft primary.CourseContentDraft) error {
	weeks := make([]secondary.WeekDraftRecord, len(draft.Weeks))
	for i, week := range draft.Weeks {
		targets := make([]secondary.TargetDraftRecord, len(week.Targets))
		for j, target := range week.Targets {
			targets[j] = secondary.TargetDraftRecord{
				Serial: target.Serial,
				Text:   target.Text,
				Source: target.Source,
			}
		}
		weeks[i] = secondary.WeekDraftRecord{
			Serial:  week.Serial,
			Text:    week.Text,
			Targets: targets,
		}
	}

	record := secondary.CourseContentRecord{
		Name:        draft.Name,
		Description: draft.Description,
		Book:        draft.Book,
		Weeks:       weeks,
	}

	return s.courseRepo.UpdateContent(ctx, courseID, record)
}

// UpdateStatus sets the course status. Activation additionally lays out the
// incomplete weeks on consecutive Mondays starting from the current week.
func (s *CourseServiceImpl) UpdateStatus(ctx context.Context, courseID string, status string) error {
	parsed, err := primary.ParseCourseStatus(status)
	if err != nil {
		return err
	}

	if parsed == primary.StatusActive {
		return s.courseRepo.ActivateWithDates(ctx, courseID, mostRecentMonday(s.now()))
	}

	return s.courseRepo.UpdateStatus(ctx, courseID, parsed.String())
}

// weekFromRecord converts a week record and its target records to the domain
// shape.
func weekFromRecord(record *secondary.WeekRecord, targetRecords []*secondary.TargetRecord) primary.Week {
	targets := make([]primary.Target, len(targetRecords))
	for i, target := range targetRecords {
		targets[i] = primary.Target{
			ID:         target.ID,
			Serial:     target.Serial,
			Text:       target.Text,
			Source:     target.Source,
			IsComplete: target.IsComplete,
		}
	}

	return primary.Week{
		ID:         record.ID,
		Serial:     record.Serial,
		Text:       record.Text,
		Date:       record.Date,
		IsComplete: record.IsComplete,
		Targets:    targets,
	}
}

// mostRecentMonday returns the Monday of the week containing t, at midnight.
// Monday itself maps to the same day.
func mostRecentMonday(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Ensure CourseServiceImpl implements the interface
var _ primary.CourseService = (*CourseServiceImpl)(nil)
