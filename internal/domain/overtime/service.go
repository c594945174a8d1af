package overtime

import "context"

type OvertimeService interface {
	// List returns the employee's overtime requests for the year, most
	// recent date first.
	List(ctx context.Context, year int) ([]Request, error)
	Create(ctx context.Context, req CreateRequest) (Request, error)
}
