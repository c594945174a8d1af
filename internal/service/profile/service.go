package profile

import (
	"context"

	"github.com/hrmviet/chamcong-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	repo employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{repo: repo}
}

// Profile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Profile(ctx context.Context) (employee.Profile, error) {
	return s.repo.Me(ctx)
}

// UpdateProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, req employee.UpdateProfileRequest) (employee.Profile, error) {
	if err := req.Validate(); err != nil {
		return employee.Profile{}, err
	}
	return s.repo.UpdateMe(ctx, req)
}
