package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/mnemona/internal/ports/secondary"
)

// ScheduleRepository implements secondary.ScheduleRepository with SQLite.
type ScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new SQLite schedule repository.
func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// WeeksOn retrieves the weeks scheduled on a date together with their course
// headers. The visibility filter admits weeks of active and complete
// courses, plus completed weeks of inactive courses (historical work stays
// visible after a course is deactivated; its undone weeks do not).
func (r *ScheduleRepository) WeeksOn(ctx context.Context, date string) ([]*secondary.ScheduleWeekRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
		  w.id, w.course_id, w.serial, w.text, w.date, w.is_complete,
		  c.id, d.code, c.serial, c.name, c.status
		FROM weeks w
		JOIN courses c ON w.course_id = c.id
		JOIN departments d ON c.department_id = d.id
		WHERE w.date = ?
		  AND (
		    c.status IN ('active', 'complete')
		    OR (c.status = 'inactive' AND w.is_complete = 1)
		  )
		ORDER BY d.code, c.serial, w.serial`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ScheduleWeekRecord
	for rows.Next() {
		var weekDate sql.NullString
		record := &secondary.ScheduleWeekRecord{}
		err := rows.Scan(
			&record.Week.ID, &record.Week.CourseID, &record.Week.Serial,
			&record.Week.Text, &weekDate, &record.Week.IsComplete,
			&record.Course.ID, &record.Course.DepartmentCode, &record.Course.Serial,
			&record.Course.Name, &record.Course.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		record.Week.Date = weekDate.String
		records = append(records, record)
	}

	return records, rows.Err()
}

// Ensure ScheduleRepository implements the interface
var _ secondary.ScheduleRepository = (*ScheduleRepository)(nil)
