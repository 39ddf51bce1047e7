package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/mnemona/internal/ports/secondary"
)

// DepartmentRepository implements secondary.DepartmentRepository with SQLite.
type DepartmentRepository struct {
	db *sql.DB
}

// NewDepartmentRepository creates a new SQLite department repository.
func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// List retrieves all departments ordered by code.
func (r *DepartmentRepository) List(ctx context.Context) ([]*secondary.DepartmentRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, code, name FROM departments ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []*secondary.DepartmentRecord
	for rows.Next() {
		record := &secondary.DepartmentRecord{}
		if err := rows.Scan(&record.ID, &record.Code, &record.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, record)
	}

	return departments, rows.Err()
}

// upsertDepartmentTx updates the department's name if the code exists,
// otherwise inserts a new department with a fresh id. Runs inside the
// caller's transaction so dependent course inserts see it.
func upsertDepartmentTx(ctx context.Context, tx *sql.Tx, code, name string) error {
	var id string
	err := tx.QueryRowContext(ctx, "SELECT id FROM departments WHERE code = ?", code).Scan(&id)
	if err == sql.ErrNoRows {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO departments (id, code, name) VALUES (?, ?, ?)",
			uuid.NewString(), code, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert department %s: %w", code, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up department %s: %w", code, err)
	}

	if _, err := tx.ExecContext(ctx, "UPDATE departments SET name = ? WHERE id = ?", name, id); err != nil {
		return fmt.Errorf("failed to update department %s: %w", code, err)
	}
	return nil
}

// departmentCodeMapTx reads the full code -> id mapping inside the caller's
// transaction.
func departmentCodeMapTx(ctx context.Context, tx *sql.Tx) (map[string]string, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, code FROM departments")
	if err != nil {
		return nil, fmt.Errorf("failed to read departments: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]string)
	for rows.Next() {
		var id, code string
		if err := rows.Scan(&id, &code); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		codes[code] = id
	}

	return codes, rows.Err()
}

// Ensure DepartmentRepository implements the interface
var _ secondary.DepartmentRepository = (*DepartmentRepository)(nil)
