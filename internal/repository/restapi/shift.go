package restapi

import (
	"context"
	"fmt"

	"github.com/hrmviet/chamcong-go/internal/domain/shift"
	"github.com/hrmviet/chamcong-go/internal/pkg/apiclient"
)

type workShiftRepository struct {
	client *apiclient.Client
}

func NewWorkShiftRepository(client *apiclient.Client) shift.WorkShiftRepository {
	return &workShiftRepository{client: client}
}

// List implements shift.WorkShiftRepository.
func (r *workShiftRepository) List(ctx context.Context) ([]shift.WorkShift, error) {
	var dtos []shift.WorkShiftDTO
	if err := r.client.Get(ctx, "/api/v1/work-shifts", nil, &dtos); err != nil {
		return nil, fmt.Errorf("failed to list work shifts: %w", err)
	}

	shifts := make([]shift.WorkShift, 0, len(dtos))
	for _, dto := range dtos {
		details := make([]shift.ShiftDetail, 0, len(dto.ShiftDetails))
		for _, d := range dto.ShiftDetails {
			details = append(details, shift.ShiftDetail{
				DayOfWeek: d.DayOfWeek,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
			})
		}
		shifts = append(shifts, shift.WorkShift{
			ID:      dto.ID,
			Name:    dto.ShiftName,
			Details: details,
		})
	}

	return shifts, nil
}
