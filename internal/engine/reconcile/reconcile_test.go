package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmviet/chamcong-go/internal/domain/attendance"
	"github.com/hrmviet/chamcong-go/internal/domain/scan"
)

func day(dom int) time.Time {
	return time.Date(2026, time.August, dom, 0, 0, 0, 0, time.UTC)
}

func clock(dom, hour, minute int) time.Time {
	return time.Date(2026, time.August, dom, hour, minute, 0, 0, time.UTC)
}

func event(dom, hour, minute int, typ scan.Type) scan.Event {
	return scan.Event{
		Date:      day(dom),
		ScanTime:  clock(dom, hour, minute),
		Type:      typ,
		ShiftName: "Ca sáng",
	}
}

func TestReconcilePairsCheckInAndOut(t *testing.T) {
	events := []scan.Event{
		event(3, 8, 0, scan.TypeArrival),
		event(3, 17, 0, scan.TypeDeparture),
	}

	got := Reconcile(events)
	require.Len(t, got, 1)
	d := got[0]
	assert.Equal(t, day(3), d.Date)
	require.NotNil(t, d.CheckIn)
	require.NotNil(t, d.CheckOut)
	assert.Equal(t, clock(3, 8, 0), *d.CheckIn)
	assert.Equal(t, clock(3, 17, 0), *d.CheckOut)
	assert.Equal(t, "Ca sáng", d.ShiftName)
	assert.InDelta(t, 9.0, d.WorkHours, 1e-9)
}

func TestReconcileFirstEventWins(t *testing.T) {
	// Input order decides duplicates, not chronology.
	later := event(3, 9, 0, scan.TypeArrival)
	earlier := event(3, 8, 0, scan.TypeArrival)

	got := Reconcile([]scan.Event{later, earlier})
	require.Len(t, got, 1)
	require.NotNil(t, got[0].CheckIn)
	assert.Equal(t, clock(3, 9, 0), *got[0].CheckIn)
}

func TestReconcileIsDeterministic(t *testing.T) {
	events := []scan.Event{
		event(3, 8, 0, scan.TypeArrival),
		event(3, 17, 0, scan.TypeDeparture),
		event(4, 8, 15, scan.TypeLateArrival),
	}

	first := Reconcile(events)
	second := Reconcile(events)
	assert.Equal(t, first, second)
}

func TestReconcileSortsMostRecentFirst(t *testing.T) {
	events := []scan.Event{
		event(1, 8, 0, scan.TypeArrival),
		event(15, 8, 0, scan.TypeArrival),
		event(7, 8, 0, scan.TypeArrival),
	}

	got := Reconcile(events)
	require.Len(t, got, 3)
	assert.Equal(t, day(15), got[0].Date)
	assert.Equal(t, day(7), got[1].Date)
	assert.Equal(t, day(1), got[2].Date)
}

func TestReconcileNegativeWorkHoursClampedToZero(t *testing.T) {
	events := []scan.Event{
		event(3, 17, 0, scan.TypeArrival),
		event(3, 8, 0, scan.TypeDeparture),
	}

	got := Reconcile(events)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].WorkHours)
}

func TestReconcileSkipsZeroTimestampRecords(t *testing.T) {
	// 30 records, one with an unparsable timestamp: 29 days survive.
	events := make([]scan.Event, 0, 30)
	for dom := 1; dom <= 29; dom++ {
		events = append(events, event(dom, 8, 0, scan.TypeArrival))
	}
	events = append(events, scan.Event{Type: scan.TypeArrival, ShiftName: "Ca sáng"})

	got := Reconcile(events)
	assert.Len(t, got, 29)
}

func TestReconcileLateAndEarlyTypesCountAsInAndOut(t *testing.T) {
	events := []scan.Event{
		event(3, 8, 45, scan.TypeLateArrival),
		event(3, 16, 30, scan.TypeEarlyDeparture),
	}

	got := Reconcile(events)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].CheckIn)
	require.NotNil(t, got[0].CheckOut)
}

func TestMonthlyCalendarClassification(t *testing.T) {
	events := []scan.Event{
		event(3, 8, 0, scan.TypeArrival),
		event(3, 17, 0, scan.TypeDeparture),
		event(4, 8, 0, scan.TypeArrival),
		event(5, 17, 0, scan.TypeDeparture),
	}

	got := MonthlyCalendar(events, 2026, time.August)
	require.Len(t, got, 31)

	byDay := make(map[int]attendance.DayStatus, len(got))
	for _, d := range got {
		byDay[d.Date.Day()] = d.Status
	}

	assert.Equal(t, attendance.DayStatusPresent, byDay[3])
	assert.Equal(t, attendance.DayStatusMissCheckout, byDay[4])
	assert.Equal(t, attendance.DayStatusMissCheckin, byDay[5])
	assert.Equal(t, attendance.DayStatusAbsent, byDay[6])
}

func TestMonthlyCalendarEmptyMonthAllAbsent(t *testing.T) {
	got := MonthlyCalendar(nil, 2026, time.February)
	require.Len(t, got, 28)
	for _, d := range got {
		assert.Equal(t, attendance.DayStatusAbsent, d.Status)
	}
}

func TestMonthlyCalendarIgnoresOtherMonths(t *testing.T) {
	events := []scan.Event{
		{Date: time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC), ScanTime: time.Date(2026, time.July, 31, 8, 0, 0, 0, time.UTC), Type: scan.TypeArrival},
	}

	got := MonthlyCalendar(events, 2026, time.August)
	for _, d := range got {
		assert.Equal(t, attendance.DayStatusAbsent, d.Status)
	}
}

func TestMonthlySummary(t *testing.T) {
	events := []scan.Event{
		event(3, 8, 45, scan.TypeLateArrival),     // 45 min late
		event(3, 16, 30, scan.TypeEarlyDeparture), // 30 min early
		event(4, 8, 0, scan.TypeArrival),
		event(4, 17, 0, scan.TypeDeparture),
		event(5, 9, 0, scan.TypeLateArrival), // 60 min late
	}

	got := MonthlySummary(events, 2026, time.August)
	assert.Equal(t, 3, got.TotalWorkDays)
	assert.Equal(t, 2, got.EstimatedWorkedDays) // floor(0.8 * 3)
	assert.Equal(t, 2, got.LateArrivalCount)
	assert.Equal(t, 105, got.LateArrivalMinutes)
	assert.Equal(t, 1, got.EarlyDepartureCount)
	assert.Equal(t, 30, got.EarlyDepartureMinutes)
}

func TestMonthlySummaryClampsNegativeMinutes(t *testing.T) {
	// Labeled late but scanned before 08:00, labeled early but after 17:00.
	events := []scan.Event{
		event(3, 7, 45, scan.TypeLateArrival),
		event(3, 17, 30, scan.TypeEarlyDeparture),
	}

	got := MonthlySummary(events, 2026, time.August)
	assert.Equal(t, 1, got.LateArrivalCount)
	assert.Equal(t, 0, got.LateArrivalMinutes)
	assert.Equal(t, 1, got.EarlyDepartureCount)
	assert.Equal(t, 0, got.EarlyDepartureMinutes)
}

func TestMonthlySummaryEmpty(t *testing.T) {
	got := MonthlySummary(nil, 2026, time.August)
	assert.Equal(t, attendance.MonthlySummary{}, got)
}
