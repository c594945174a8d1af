package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository forwards leave CRUD to the backend.
type LeaveRequestRepository interface {
	List(ctx context.Context, year int) ([]Request, error)
	Create(ctx context.Context, req CreateRequest) (Request, error)

	// Approved returns approved requests overlapping [from, to]; used
	// by the monthly calendar to mark leave days.
	Approved(ctx context.Context, from, to time.Time) ([]Request, error)
}
