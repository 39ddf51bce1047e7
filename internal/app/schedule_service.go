package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/mnemona/internal/ports/primary"
	"github.com/example/mnemona/internal/ports/secondary"
)

// ScheduleServiceImpl implements the ScheduleService interface.
type ScheduleServiceImpl struct {
	scheduleRepo secondary.ScheduleRepository
	targetRepo   secondary.TargetRepository
}

// NewScheduleService creates a new ScheduleService with injected dependencies.
func NewScheduleService(scheduleRepo secondary.ScheduleRepository, targetRepo secondary.TargetRepository) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		targetRepo:   targetRepo,
	}
}

// GetSchedule returns the visible weeks on a date, grouped by course. Courses
// appear in department code then serial order; weeks within a course in
// serial order.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, date string) ([]*primary.ScheduleItem, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}

	records, err := s.scheduleRepo.WeeksOn(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	weekIDs := make([]string, len(records))
	for i, record := range records {
		weekIDs[i] = record.Week.ID
	}

	targetsByWeek, err := s.targetRepo.ListByWeeks(ctx, weekIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load targets: %w", err)
	}

	// Group rows by course, preserving the repository's ordering.
	var items []*primary.ScheduleItem
	byCourse := make(map[string]*primary.ScheduleItem)
	for _, record := range records {
		item, ok := byCourse[record.Course.ID]
		if !ok {
			status, err := primary.ParseCourseStatus(record.Course.Status)
			if err != nil {
				return nil, fmt.Errorf("course %s has corrupt status: %w", record.Course.ID, err)
			}
			item = &primary.ScheduleItem{
				Course: primary.CourseHeader{
					ID:         record.Course.ID,
					Department: record.Course.DepartmentCode,
					Serial:     record.Course.Serial,
					Name:       record.Course.Name,
					Status:     status,
				},
			}
			byCourse[record.Course.ID] = item
			items = append(items, item)
		}
		item.Weeks = append(item.Weeks, weekFromRecord(&record.Week, targetsByWeek[record.Week.ID]))
	}

	return items, nil
}

// Ensure ScheduleServiceImpl implements the interface
var _ primary.ScheduleService = (*ScheduleServiceImpl)(nil)
