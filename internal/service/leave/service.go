package leave

import (
	"context"
	"sort"

	"github.com/hrmviet/chamcong-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	repo leave.LeaveRequestRepository
}

func NewLeaveService(repo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{repo: repo}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, year int) ([]leave.Request, error) {
	requests, err := s.repo.List(ctx, year)
	if err != nil {
		return nil, err
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].StartDate.After(requests[j].StartDate)
	})
	return requests, nil
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}
	return s.repo.Create(ctx, req)
}
