package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
)

// serialProbeRounds bounds the random draws per digit width before the
// generator gives up on the range and widens.
const serialProbeRounds = 10

// maxSerialDigits keeps the widening loop inside int64 range. A department
// would need ~10^17 courses to get here.
const maxSerialDigits = 18

// generateSerial picks a course serial unique within the department, using
// the caller's open transaction so the result is valid at commit time.
//
// Serials come from widening digit ranges starting at 3 digits (100-999):
// while the current range has room, up to serialProbeRounds uniform draws
// are checked for collisions; a saturated range (or one where every draw
// collided) widens by one digit. Random sampling keeps serials
// non-sequential and, while the range is sparse, succeeds within a draw
// or two.
func generateSerial(ctx context.Context, tx *sql.Tx, departmentID string) (int64, error) {
	for digits := 3; digits <= maxSerialDigits; digits++ {
		lower := int64(1)
		for i := 1; i < digits; i++ {
			lower *= 10
		}
		upper := lower*10 - 1
		rangeSize := upper - lower + 1

		var count int64
		err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM courses WHERE department_id = ? AND serial BETWEEN ? AND ?",
			departmentID, lower, upper,
		).Scan(&count)
		if err != nil {
			return 0, fmt.Errorf("failed to count serials in range: %w", err)
		}

		if count >= rangeSize {
			continue
		}

		for i := 0; i < serialProbeRounds; i++ {
			candidate := lower + rand.Int64N(rangeSize)

			var one int
			err := tx.QueryRowContext(ctx,
				"SELECT 1 FROM courses WHERE department_id = ? AND serial = ?",
				departmentID, candidate,
			).Scan(&one)
			if err == sql.ErrNoRows {
				return candidate, nil
			}
			if err != nil {
				return 0, fmt.Errorf("failed to check serial collision: %w", err)
			}
		}
	}

	return 0, fmt.Errorf("serial space exhausted for department %s", departmentID)
}
