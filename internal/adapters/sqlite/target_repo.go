package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/mnemona/internal/ports/secondary"
)

// TargetRepository implements secondary.TargetRepository with SQLite.
type TargetRepository struct {
	db *sql.DB
}

// NewTargetRepository creates a new SQLite target repository.
func NewTargetRepository(db *sql.DB) *TargetRepository {
	return &TargetRepository{db: db}
}

// ListByWeeks retrieves targets for a set of weeks in one query, keyed by
// week id, each list ordered by serial.
func (r *TargetRepository) ListByWeeks(ctx context.Context, weekIDs []string) (map[string][]*secondary.TargetRecord, error) {
	targets := make(map[string][]*secondary.TargetRecord)
	if len(weekIDs) == 0 {
		return targets, nil
	}

	args := make([]any, len(weekIDs))
	for i, weekID := range weekIDs {
		args[i] = weekID
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, week_id, serial, text, source, is_complete FROM targets WHERE week_id IN ("+
			inPlaceholders(len(weekIDs))+") ORDER BY week_id, serial ASC",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		record := &secondary.TargetRecord{}
		err := rows.Scan(&record.ID, &record.WeekID, &record.Serial, &record.Text, &record.Source, &record.IsComplete)
		if err != nil {
			return nil, fmt.Errorf("failed to scan target: %w", err)
		}
		targets[record.WeekID] = append(targets[record.WeekID], record)
	}

	return targets, rows.Err()
}

// SetComplete sets the is_complete flag on a target. No cascade to the week.
func (r *TargetRepository) SetComplete(ctx context.Context, id string, complete bool) error {
	result, err := r.db.ExecContext(ctx, "UPDATE targets SET is_complete = ? WHERE id = ?", complete, id)
	if err != nil {
		return fmt.Errorf("failed to update target: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("target %s: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// Ensure TargetRepository implements the interface
var _ secondary.TargetRepository = (*TargetRepository)(nil)
