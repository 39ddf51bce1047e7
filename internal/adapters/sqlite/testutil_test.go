// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through setupTestDB, which loads the authoritative
// schema via db.GetSchemaSQL() so tests cannot drift from production. Do not
// hardcode CREATE TABLE statements in test files; use the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/mnemona/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedDepartment inserts a test department and returns its ID.
func seedDepartment(t *testing.T, db *sql.DB, code, name string) string {
	t.Helper()
	if code == "" {
		code = "CS"
	}
	if name == "" {
		name = "Computer Science"
	}
	id := uuid.NewString()
	_, err := db.Exec("INSERT INTO departments (id, code, name) VALUES (?, ?, ?)", id, code, name)
	if err != nil {
		t.Fatalf("failed to seed department: %v", err)
	}
	return id
}

// seedCourse inserts a test course and returns its ID.
func seedCourse(t *testing.T, db *sql.DB, departmentID string, serial int64, name, status string) string {
	t.Helper()
	if name == "" {
		name = "Test Course"
	}
	if status == "" {
		status = "draft"
	}
	id := uuid.NewString()
	_, err := db.Exec(
		"INSERT INTO courses (id, department_id, serial, name, status) VALUES (?, ?, ?, ?, ?)",
		id, departmentID, serial, name, status,
	)
	if err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}
	return id
}

// seedWeek inserts a test week and returns its ID. An empty date stays NULL.
func seedWeek(t *testing.T, db *sql.DB, courseID string, serial int64, text, date string, complete bool) string {
	t.Helper()
	if text == "" {
		text = "Test Week"
	}
	id := uuid.NewString()
	var err error
	if date == "" {
		_, err = db.Exec(
			"INSERT INTO weeks (id, course_id, serial, text, is_complete) VALUES (?, ?, ?, ?, ?)",
			id, courseID, serial, text, complete,
		)
	} else {
		_, err = db.Exec(
			"INSERT INTO weeks (id, course_id, serial, text, date, is_complete) VALUES (?, ?, ?, ?, ?, ?)",
			id, courseID, serial, text, date, complete,
		)
	}
	if err != nil {
		t.Fatalf("failed to seed week: %v", err)
	}
	return id
}

// seedTarget inserts a test target and returns its ID.
func seedTarget(t *testing.T, db *sql.DB, weekID string, serial int64, text, source string) string {
	t.Helper()
	if text == "" {
		text = "Test Target"
	}
	id := uuid.NewString()
	_, err := db.Exec(
		"INSERT INTO targets (id, week_id, serial, text, source) VALUES (?, ?, ?, ?, ?)",
		id, weekID, serial, text, source,
	)
	if err != nil {
		t.Fatalf("failed to seed target: %v", err)
	}
	return id
}

// countRows returns the number of rows in a table.
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}
