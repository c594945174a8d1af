package history

import (
	"context"
	"fmt"
	"time"

	"github.com/hrmviet/chamcong-go/internal/domain/attendance"
	"github.com/hrmviet/chamcong-go/internal/domain/leave"
	"github.com/hrmviet/chamcong-go/internal/domain/scan"
	"github.com/hrmviet/chamcong-go/internal/engine/reconcile"
)

type HistoryServiceImpl struct {
	scans  scan.EventRepository
	leaves leave.LeaveRequestRepository
}

func NewHistoryService(scanRepo scan.EventRepository, leaveRepo leave.LeaveRequestRepository) attendance.HistoryService {
	return &HistoryServiceImpl{
		scans:  scanRepo,
		leaves: leaveRepo,
	}
}

// Daily implements attendance.HistoryService.
func (s *HistoryServiceImpl) Daily(ctx context.Context, from, to time.Time) ([]attendance.Daily, error) {
	events, err := s.scans.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan events: %w", err)
	}
	return reconcile.Reconcile(events), nil
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, -1)
}

// Calendar implements attendance.HistoryService. Approved leave is
// overlaid onto absent days only; a day with any scan event keeps its
// scan-derived status even when a leave request covers it.
func (s *HistoryServiceImpl) Calendar(ctx context.Context, year int, month time.Month) ([]attendance.CalendarDay, error) {
	from, to := monthRange(year, month)

	events, err := s.scans.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan events: %w", err)
	}

	days := reconcile.MonthlyCalendar(events, year, month)

	approved, err := s.leaves.Approved(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved leave: %w", err)
	}

	for i := range days {
		if days[i].Status != attendance.DayStatusAbsent {
			continue
		}
		for _, req := range approved {
			if req.Covers(days[i].Date) {
				days[i].Status = attendance.DayStatusLeave
				break
			}
		}
	}
	return days, nil
}

// Summary implements attendance.HistoryService.
func (s *HistoryServiceImpl) Summary(ctx context.Context, year int, month time.Month) (attendance.MonthlySummary, error) {
	from, to := monthRange(year, month)

	events, err := s.scans.ListRange(ctx, from, to)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to load scan events: %w", err)
	}
	return reconcile.MonthlySummary(events, year, month), nil
}
