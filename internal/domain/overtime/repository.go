package overtime

import "context"

// OvertimeRepository forwards overtime CRUD to the backend.
type OvertimeRepository interface {
	List(ctx context.Context, year int) ([]Request, error)
	Create(ctx context.Context, req CreateRequest) (Request, error)
}
