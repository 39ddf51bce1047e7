package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/mnemona/internal/ports/secondary"
)

// WeekRepository implements secondary.WeekRepository with SQLite.
type WeekRepository struct {
	db *sql.DB
}

// NewWeekRepository creates a new SQLite week repository.
func NewWeekRepository(db *sql.DB) *WeekRepository {
	return &WeekRepository{db: db}
}

// scanWeek scans a week row into a WeekRecord.
func scanWeek(scanner interface {
	Scan(dest ...any) error
}) (*secondary.WeekRecord, error) {
	var date sql.NullString

	record := &secondary.WeekRecord{}
	err := scanner.Scan(&record.ID, &record.CourseID, &record.Serial, &record.Text, &date, &record.IsComplete)
	if err != nil {
		return nil, err
	}

	record.Date = date.String

	return record, nil
}

// ListByCourse retrieves a course's weeks ordered by serial.
func (r *WeekRepository) ListByCourse(ctx context.Context, courseID string) ([]*secondary.WeekRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, course_id, serial, text, date, is_complete FROM weeks WHERE course_id = ? ORDER BY serial ASC",
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	defer rows.Close()

	var weeks []*secondary.WeekRecord
	for rows.Next() {
		record, err := scanWeek(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan week: %w", err)
		}
		weeks = append(weeks, record)
	}

	return weeks, rows.Err()
}

// SetComplete sets the is_complete flag on a week. No cascade to targets.
func (r *WeekRepository) SetComplete(ctx context.Context, id string, complete bool) error {
	result, err := r.db.ExecContext(ctx, "UPDATE weeks SET is_complete = ? WHERE id = ?", complete, id)
	if err != nil {
		return fmt.Errorf("failed to update week: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("week %s: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// Ensure WeekRepository implements the interface
var _ secondary.WeekRepository = (*WeekRepository)(nil)
