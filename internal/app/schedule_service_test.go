package app

import (
	"context"
	"testing"

	"github.com/example/mnemona/internal/ports/primary"
	"github.com/example/mnemona/internal/ports/secondary"
)

func TestGetSchedule_GroupsByCourse(t *testing.T) {
	scheduleRepo := &mockScheduleRepository{
		records: []*secondary.ScheduleWeekRecord{
			{
				Week:   secondary.WeekRecord{ID: "week-1", CourseID: "course-1", Serial: 1, Text: "Processes", Date: "2026-08-24"},
				Course: secondary.CoursePreviewRecord{ID: "course-1", DepartmentCode: "CS", Serial: 314, Name: "Operating Systems", Status: "active"},
			},
			{
				Week:   secondary.WeekRecord{ID: "week-2", CourseID: "course-1", Serial: 2, Text: "Scheduling", Date: "2026-08-24"},
				Course: secondary.CoursePreviewRecord{ID: "course-1", DepartmentCode: "CS", Serial: 314, Name: "Operating Systems", Status: "active"},
			},
			{
				Week:   secondary.WeekRecord{ID: "week-3", CourseID: "course-2", Serial: 1, Text: "Vectors", Date: "2026-08-24", IsComplete: true},
				Course: secondary.CoursePreviewRecord{ID: "course-2", DepartmentCode: "MATH", Serial: 271, Name: "Linear Algebra", Status: "inactive"},
			},
		},
	}
	targetRepo := newMockTargetRepository()
	targetRepo.targets["week-1"] = []*secondary.TargetRecord{
		{ID: "target-1", WeekID: "week-1", Serial: 1, Text: "Read ch 3-6"},
	}
	service := NewScheduleService(scheduleRepo, targetRepo)

	items, err := service.GetSchedule(context.Background(), "2026-08-24")
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(items))
	}
	if items[0].Course.Department != "CS" || items[0].Course.Status != primary.StatusActive {
		t.Errorf("unexpected first course: %+v", items[0].Course)
	}
	if len(items[0].Weeks) != 2 {
		t.Fatalf("expected 2 weeks on first course, got %d", len(items[0].Weeks))
	}
	if len(items[0].Weeks[0].Targets) != 1 {
		t.Errorf("expected 1 target on week 1, got %d", len(items[0].Weeks[0].Targets))
	}
	if items[1].Course.Department != "MATH" || len(items[1].Weeks) != 1 {
		t.Errorf("unexpected second course: %+v", items[1])
	}
	if scheduleRepo.lastDate != "2026-08-24" {
		t.Errorf("expected query for 2026-08-24, got %s", scheduleRepo.lastDate)
	}
}

func TestGetSchedule_InvalidDate(t *testing.T) {
	service := NewScheduleService(&mockScheduleRepository{}, newMockTargetRepository())

	if _, err := service.GetSchedule(context.Background(), "24/08/2026"); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := service.GetSchedule(context.Background(), "2026-02-30"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestGetSchedule_EmptyDay(t *testing.T) {
	service := NewScheduleService(&mockScheduleRepository{}, newMockTargetRepository())

	items, err := service.GetSchedule(context.Background(), "2026-08-24")
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}
