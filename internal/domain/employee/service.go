package employee

import "context"

type EmployeeService interface {
	Profile(ctx context.Context) (Profile, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (Profile, error)
}
