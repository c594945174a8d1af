package attendance

import (
	"context"
	"time"

	"github.com/hrmviet/chamcong-go/internal/domain/machine"
	"github.com/hrmviet/chamcong-go/internal/domain/scan"
)

// CheckinService gates and performs check-in/check-out actions.
type CheckinService interface {
	// Status resolves geofence eligibility and today's/current shifts
	// for the given instant. A nil location yields an indeterminate
	// (LocationKnown=false) status, not an error.
	Status(ctx context.Context, now time.Time, location *machine.Coordinate) (CheckinStatus, error)

	// CheckIn submits an arrival scan after enforcing the gate.
	CheckIn(ctx context.Context, req ActionRequest) (scan.Event, error)

	// CheckOut submits a departure scan after enforcing the gate.
	CheckOut(ctx context.Context, req ActionRequest) (scan.Event, error)
}

// HistoryService reconciles raw scan events into the history views.
type HistoryService interface {
	// Daily returns one record per day with events in [from, to],
	// most recent day first.
	Daily(ctx context.Context, from, to time.Time) ([]Daily, error)

	// Calendar returns every day of the month classified into one of
	// the five day statuses, with approved leave overlaid.
	Calendar(ctx context.Context, year int, month time.Month) ([]CalendarDay, error)

	// Summary aggregates the month for the summary view.
	Summary(ctx context.Context, year int, month time.Month) (MonthlySummary, error)
}
