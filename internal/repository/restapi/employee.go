package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hrmviet/chamcong-go/internal/domain/employee"
	"github.com/hrmviet/chamcong-go/internal/pkg/apiclient"
)

type employeeRepository struct {
	client *apiclient.Client
}

func NewEmployeeRepository(client *apiclient.Client) employee.EmployeeRepository {
	return &employeeRepository{client: client}
}

// Me implements employee.EmployeeRepository.
func (r *employeeRepository) Me(ctx context.Context) (employee.Profile, error) {
	var profile employee.Profile
	if err := r.client.Get(ctx, "/api/v1/employees/me", nil, &profile); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateMe implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateMe(ctx context.Context, req employee.UpdateProfileRequest) (employee.Profile, error) {
	if err := req.Validate(); err != nil {
		return employee.Profile{}, err
	}

	var profile employee.Profile
	if err := r.client.Put(ctx, "/api/v1/employees/me", req, &profile); err != nil {
		return employee.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
