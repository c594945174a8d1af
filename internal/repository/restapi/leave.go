package restapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/hrmviet/chamcong-go/internal/domain/leave"
	"github.com/hrmviet/chamcong-go/internal/pkg/apiclient"
	"github.com/hrmviet/chamcong-go/internal/pkg/validator"
)

type leaveRepository struct {
	client *apiclient.Client
}

func NewLeaveRepository(client *apiclient.Client) leave.LeaveRequestRepository {
	return &leaveRepository{client: client}
}

func (r *leaveRepository) list(ctx context.Context, query url.Values) ([]leave.Request, error) {
	var dtos []leave.RequestDTO
	if err := r.client.Get(ctx, "/api/v1/leaves", query, &dtos); err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	requests := make([]leave.Request, 0, len(dtos))
	for _, dto := range dtos {
		start, startOK := validator.IsValidDate(dto.StartDate)
		end, endOK := validator.IsValidDate(dto.EndDate)
		if !startOK || !endOK {
			slog.Warn("skipping leave request with unparsable dates", "leave_id", dto.ID)
			continue
		}
		requests = append(requests, leave.Request{
			ID:        dto.ID,
			LeaveType: dto.LeaveType,
			StartDate: start,
			EndDate:   end,
			Reason:    dto.Reason,
			Status:    dto.Status,
		})
	}
	return requests, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRepository) List(ctx context.Context, year int) ([]leave.Request, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	return r.list(ctx, query)
}

// Approved implements leave.LeaveRequestRepository.
func (r *leaveRepository) Approved(ctx context.Context, from, to time.Time) ([]leave.Request, error) {
	query := url.Values{}
	query.Set("status", string(leave.StatusApproved))
	query.Set("start_date", from.Format("2006-01-02"))
	query.Set("end_date", to.Format("2006-01-02"))
	return r.list(ctx, query)
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.CreateRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	var dto leave.RequestDTO
	if err := r.client.Post(ctx, "/api/v1/leaves", req, &dto); err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	start, _ := validator.IsValidDate(dto.StartDate)
	end, _ := validator.IsValidDate(dto.EndDate)
	return leave.Request{
		ID:        dto.ID,
		LeaveType: dto.LeaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    dto.Reason,
		Status:    dto.Status,
	}, nil
}
