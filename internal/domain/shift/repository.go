package shift

import "context"

// WorkShiftRepository fetches the shift registry assigned to the
// authenticated employee.
type WorkShiftRepository interface {
	List(ctx context.Context) ([]WorkShift, error)
}
