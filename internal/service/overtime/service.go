package overtime

import (
	"context"
	"sort"

	"github.com/hrmviet/chamcong-go/internal/domain/overtime"
)

type OvertimeServiceImpl struct {
	repo overtime.OvertimeRepository
}

func NewOvertimeService(repo overtime.OvertimeRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{repo: repo}
}

// List implements overtime.OvertimeService. Dates are YYYY-MM-DD so the
// lexicographic order is the chronological one.
func (s *OvertimeServiceImpl) List(ctx context.Context, year int) ([]overtime.Request, error) {
	requests, err := s.repo.List(ctx, year)
	if err != nil {
		return nil, err
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].Date > requests[j].Date
	})
	return requests, nil
}

// Create implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Create(ctx context.Context, req overtime.CreateRequest) (overtime.Request, error) {
	if err := req.Validate(); err != nil {
		return overtime.Request{}, err
	}
	return s.repo.Create(ctx, req)
}
