package employee

import "context"

// EmployeeRepository reads and updates the authenticated employee's
// own profile.
type EmployeeRepository interface {
	Me(ctx context.Context) (Profile, error)
	UpdateMe(ctx context.Context, req UpdateProfileRequest) (Profile, error)
}
