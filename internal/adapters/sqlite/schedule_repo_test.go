package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/mnemona/internal/adapters/sqlite"
)

func TestScheduleRepository_WeeksOn_VisibilityFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewScheduleRepository(db)
	ctx := context.Background()

	departmentID := seedDepartment(t, db, "CS", "Computer Science")
	activeID := seedCourse(t, db, departmentID, 314, "Operating Systems", "active")
	completeID := seedCourse(t, db, departmentID, 512, "Compilers", "complete")
	inactiveID := seedCourse(t, db, departmentID, 271, "Linear Algebra", "inactive")
	draftID := seedCourse(t, db, departmentID, 105, "Drafted", "draft")

	date := "2026-08-24"
	seedWeek(t, db, activeID, 1, "Processes", date, false)
	seedWeek(t, db, completeID, 4, "Codegen", date, true)
	seedWeek(t, db, inactiveID, 1, "Vectors", date, true)
	seedWeek(t, db, inactiveID, 2, "Matrices", date, false)
	seedWeek(t, db, draftID, 1, "Hidden", date, false)
	seedWeek(t, db, activeID, 2, "Other date", "2026-08-31", false)

	records, err := repo.WeeksOn(ctx, date)
	if err != nil {
		t.Fatalf("WeeksOn failed: %v", err)
	}

	// Visible: active course week, complete course week, and the completed
	// week of the inactive course. Hidden: the inactive course's incomplete
	// week and everything under the draft course.
	if len(records) != 3 {
		t.Fatalf("expected 3 visible weeks, got %d", len(records))
	}

	texts := make(map[string]bool)
	for _, record := range records {
		texts[record.Week.Text] = true
	}
	for _, want := range []string{"Processes", "Codegen", "Vectors"} {
		if !texts[want] {
			t.Errorf("expected week '%s' to be visible", want)
		}
	}
	if texts["Matrices"] {
		t.Error("incomplete week of inactive course must be hidden")
	}
	if texts["Hidden"] {
		t.Error("draft course week must be hidden")
	}
}

func TestScheduleRepository_WeeksOn_Ordering(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewScheduleRepository(db)
	ctx := context.Background()

	mathID := seedDepartment(t, db, "MATH", "Mathematics")
	csID := seedDepartment(t, db, "CS", "Computer Science")
	mathCourse := seedCourse(t, db, mathID, 271, "Linear Algebra", "active")
	csCourse := seedCourse(t, db, csID, 314, "Operating Systems", "active")

	date := "2026-08-24"
	seedWeek(t, db, mathCourse, 1, "Vectors", date, false)
	seedWeek(t, db, csCourse, 1, "Processes", date, false)

	records, err := repo.WeeksOn(ctx, date)
	if err != nil {
		t.Fatalf("WeeksOn failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(records))
	}
	if records[0].Course.DepartmentCode != "CS" {
		t.Errorf("expected CS course first, got %s", records[0].Course.DepartmentCode)
	}
	if records[0].Week.Text != "Processes" {
		t.Errorf("expected 'Processes' first, got '%s'", records[0].Week.Text)
	}
	if records[1].Course.DepartmentCode != "MATH" {
		t.Errorf("expected MATH course second, got %s", records[1].Course.DepartmentCode)
	}
}

func TestScheduleRepository_WeeksOn_EmptyDay(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewScheduleRepository(db)

	records, err := repo.WeeksOn(context.Background(), "2026-08-24")
	if err != nil {
		t.Fatalf("WeeksOn failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no weeks, got %d", len(records))
	}
}
