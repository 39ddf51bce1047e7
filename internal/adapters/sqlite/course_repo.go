// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/example/mnemona/internal/ports/secondary"
)

// serialInsertAttempts bounds retries when a concurrent transaction wins the
// race for a generated serial and the UNIQUE(department_id, serial)
// constraint fires.
const serialInsertAttempts = 3

// CourseRepository implements secondary.CourseRepository with SQLite.
type CourseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new SQLite course repository.
func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// inPlaceholders builds a "?, ?, ?" list for a dynamic IN clause.
func inPlaceholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// nullIfEmpty maps "" to NULL for optional text columns.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint error.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// CreateBatch upserts departments and inserts courses in one transaction.
// Any failure, including an unknown department code on any course, rolls
// the whole batch back.
func (r *CourseRepository) CreateBatch(ctx context.Context, courses []secondary.CourseDraftRecord, departments []secondary.DepartmentRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, dept := range departments {
		if err := upsertDepartmentTx(ctx, tx, dept.Code, dept.Name); err != nil {
			return err
		}
	}

	codes, err := departmentCodeMapTx(ctx, tx)
	if err != nil {
		return err
	}

	for _, course := range courses {
		departmentID, ok := codes[course.DepartmentCode]
		if !ok {
			return fmt.Errorf("%w: %s", secondary.ErrUnknownDepartment, course.DepartmentCode)
		}

		if err := insertCourseTx(ctx, tx, departmentID, course); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit course batch: %w", err)
	}

	return nil
}

// insertCourseTx generates a serial and inserts the course row, retrying a
// bounded number of times if a concurrent transaction claimed the same
// serial between our probe and the insert.
func insertCourseTx(ctx context.Context, tx *sql.Tx, departmentID string, course secondary.CourseDraftRecord) error {
	var lastErr error
	for attempt := 0; attempt < serialInsertAttempts; attempt++ {
		serial, err := generateSerial(ctx, tx, departmentID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO courses (id, department_id, serial, name, description, book, prompt, status) VALUES (?, ?, ?, ?, ?, ?, ?, 'draft')",
			uuid.NewString(), departmentID, serial, course.Name,
			nullIfEmpty(course.Description), nullIfEmpty(course.Book), nullIfEmpty(course.Prompt),
		)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("failed to insert course %s: %w", course.Name, err)
		}
		lastErr = err
	}

	return fmt.Errorf("failed to assign a unique serial for course %s: %w", course.Name, lastErr)
}

// GetByID retrieves the course row and its department.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*secondary.CourseRecord, *secondary.DepartmentRecord, error) {
	var (
		course      secondary.CourseRecord
		dept        secondary.DepartmentRecord
		description sql.NullString
		book        sql.NullString
		prompt      sql.NullString
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT c.id, c.department_id, c.serial, c.name, c.description, c.book, c.prompt, c.status,
		       d.id, d.code, d.name
		FROM courses c
		JOIN departments d ON c.department_id = d.id
		WHERE c.id = ?`,
		id,
	).Scan(
		&course.ID, &course.DepartmentID, &course.Serial, &course.Name,
		&description, &book, &prompt, &course.Status,
		&dept.ID, &dept.Code, &dept.Name,
	)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("course %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get course: %w", err)
	}

	course.Description = description.String
	course.Book = book.String
	course.Prompt = prompt.String

	return &course, &dept, nil
}

// List retrieves all courses ordered by department code, then serial.
func (r *CourseRepository) List(ctx context.Context) ([]*secondary.CoursePreviewRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, d.code, c.serial, c.name, c.status
		FROM courses c
		JOIN departments d ON c.department_id = d.id
		ORDER BY d.code, c.serial`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var previews []*secondary.CoursePreviewRecord
	for rows.Next() {
		record := &secondary.CoursePreviewRecord{}
		if err := rows.Scan(&record.ID, &record.DepartmentCode, &record.Serial, &record.Name, &record.Status); err != nil {
			return nil, fmt.Errorf("failed to scan course preview: %w", err)
		}
		previews = append(previews, record)
	}

	return previews, rows.Err()
}

// UpdateContent updates the editable fields and fully replaces the course's
// weeks and targets with the draft. This is a replace, not a merge: week and
// target ids are regenerated.
func (r *CourseRepository) UpdateContent(ctx context.Context, id string, content secondary.CourseContentRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE courses SET name = ?, description = ?, book = ? WHERE id = ?",
		content.Name, nullIfEmpty(content.Description), nullIfEmpty(content.Book), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("course %s: %w", id, secondary.ErrNotFound)
	}

	weekIDs, err := weekIDsTx(ctx, tx, id)
	if err != nil {
		return err
	}

	if len(weekIDs) > 0 {
		args := make([]any, len(weekIDs))
		for i, weekID := range weekIDs {
			args[i] = weekID
		}
		_, err = tx.ExecContext(ctx,
			"DELETE FROM targets WHERE week_id IN ("+inPlaceholders(len(weekIDs))+")",
			args...,
		)
		if err != nil {
			return fmt.Errorf("failed to delete targets: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM weeks WHERE course_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete weeks: %w", err)
	}

	for _, week := range content.Weeks {
		weekID := uuid.NewString()
		_, err = tx.ExecContext(ctx,
			"INSERT INTO weeks (id, course_id, serial, text) VALUES (?, ?, ?, ?)",
			weekID, id, week.Serial, week.Text,
		)
		if err != nil {
			return fmt.Errorf("failed to insert week: %w", err)
		}

		for _, target := range week.Targets {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO targets (id, week_id, serial, text, source) VALUES (?, ?, ?, ?, ?)",
				uuid.NewString(), weekID, target.Serial, target.Text, target.Source,
			)
			if err != nil {
				return fmt.Errorf("failed to insert target: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit content update: %w", err)
	}

	return nil
}

// weekIDsTx reads the ids of a course's weeks inside the caller's
// transaction.
func weekIDsTx(ctx context.Context, tx *sql.Tx, courseID string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id FROM weeks WHERE course_id = ?", courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to read week ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var weekID string
		if err := rows.Scan(&weekID); err != nil {
			return nil, fmt.Errorf("failed to scan week id: %w", err)
		}
		ids = append(ids, weekID)
	}

	return ids, rows.Err()
}

// UpdateStatus sets the status column only. Status validation happens in
// the service layer before any SQL runs.
func (r *CourseRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE courses SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update course status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("course %s: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// ActivateWithDates sets status to active and lays the incomplete weeks out
// on consecutive calendar weeks from start, in ascending serial order.
// Dates of already-complete weeks are left alone.
func (r *CourseRepository) ActivateWithDates(ctx context.Context, id string, start time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "UPDATE courses SET status = 'active' WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to update course status: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("course %s: %w", id, secondary.ErrNotFound)
	}

	rows, err := tx.QueryContext(ctx,
		"SELECT id FROM weeks WHERE course_id = ? AND is_complete = 0 ORDER BY serial ASC",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to read incomplete weeks: %w", err)
	}

	var weekIDs []string
	for rows.Next() {
		var weekID string
		if err := rows.Scan(&weekID); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan week id: %w", err)
		}
		weekIDs = append(weekIDs, weekID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("failed to read incomplete weeks: %w", err)
	}
	rows.Close()

	for i, weekID := range weekIDs {
		date := start.AddDate(0, 0, 7*i).Format("2006-01-02")
		if _, err := tx.ExecContext(ctx, "UPDATE weeks SET date = ? WHERE id = ?", date, weekID); err != nil {
			return fmt.Errorf("failed to assign week date: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}

	return nil
}

// Ensure CourseRepository implements the interface
var _ secondary.CourseRepository = (*CourseRepository)(nil)
