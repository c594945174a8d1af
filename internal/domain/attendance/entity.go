package attendance

import "time"

// Daily is the derived attendance summary for one calendar day. It is
// computed client-side from raw scan events and never persisted.
type Daily struct {
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	ShiftName string
	WorkHours float64
}

// DayStatus classifies one calendar day for the monthly view.
type DayStatus string

const (
	DayStatusPresent      DayStatus = "present"       // both check-in and check-out
	DayStatusMissCheckout DayStatus = "miss_checkout" // check-in only
	DayStatusMissCheckin  DayStatus = "miss_checkin"  // check-out only
	DayStatusLeave        DayStatus = "leave"         // approved-leave overlay
	DayStatusAbsent       DayStatus = "absent"        // no events
)

// CalendarDay is one cell of the monthly calendar.
type CalendarDay struct {
	Date   time.Time
	Status DayStatus
}

// MonthlySummary aggregates a month of scan events for the summary view.
type MonthlySummary struct {
	// TotalWorkDays is the count of distinct days with at least one
	// event ("tổng ngày công").
	TotalWorkDays int

	// EstimatedWorkedDays is floor(0.8 * TotalWorkDays) ("ngày đi làm").
	// A documented approximation, not a precise attendance-policy value.
	EstimatedWorkedDays int

	LateArrivalCount      int
	LateArrivalMinutes    int
	EarlyDepartureCount   int
	EarlyDepartureMinutes int
}
