package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/mnemona/internal/adapters/sqlite"
)

func TestDepartmentRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDepartmentRepository(db)
	ctx := context.Background()

	seedDepartment(t, db, "MATH", "Mathematics")
	seedDepartment(t, db, "CS", "Computer Science")

	departments, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(departments))
	}
	if departments[0].Code != "CS" {
		t.Errorf("expected 'CS' first, got '%s'", departments[0].Code)
	}
	if departments[1].Code != "MATH" {
		t.Errorf("expected 'MATH' second, got '%s'", departments[1].Code)
	}
	if departments[0].Name != "Computer Science" {
		t.Errorf("expected name 'Computer Science', got '%s'", departments[0].Name)
	}
}

func TestDepartmentRepository_List_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDepartmentRepository(db)

	departments, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(departments) != 0 {
		t.Errorf("expected no departments, got %d", len(departments))
	}
}
