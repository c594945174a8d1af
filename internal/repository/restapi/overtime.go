package restapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hrmviet/chamcong-go/internal/domain/overtime"
	"github.com/hrmviet/chamcong-go/internal/pkg/apiclient"
)

type overtimeRepository struct {
	client *apiclient.Client
}

func NewOvertimeRepository(client *apiclient.Client) overtime.OvertimeRepository {
	return &overtimeRepository{client: client}
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepository) List(ctx context.Context, year int) ([]overtime.Request, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))

	var requests []overtime.Request
	if err := r.client.Get(ctx, "/api/v1/overtimes", query, &requests); err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	return requests, nil
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, req overtime.CreateRequest) (overtime.Request, error) {
	if err := req.Validate(); err != nil {
		return overtime.Request{}, err
	}

	var created overtime.Request
	if err := r.client.Post(ctx, "/api/v1/overtimes", req, &created); err != nil {
		return overtime.Request{}, fmt.Errorf("failed to create overtime request: %w", err)
	}
	return created, nil
}
