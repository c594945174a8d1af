package leave

import "context"

type LeaveService interface {
	// List returns the employee's leave requests for the year, most
	// recent start date first.
	List(ctx context.Context, year int) ([]Request, error)
	Create(ctx context.Context, req CreateRequest) (Request, error)
}
