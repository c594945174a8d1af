// Package reconcile turns a flat, unordered list of raw scan events into
// per-day attendance records, the monthly calendar classification and the
// monthly summary aggregates. Pure functions; one corrupt record must
// never hide a month of attendance, so per-record problems are logged
// and skipped.
package reconcile

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/hrmviet/chamcong-go/internal/domain/attendance"
	"github.com/hrmviet/chamcong-go/internal/domain/scan"
)

// Nominal shift boundaries used by the summary's late/early minute
// totals. Hard-coded heuristics carried over from the legacy views; they
// are not tied to the employee's actual shift assignment.
const (
	nominalStartMinutes = 8 * 60  // 08:00
	nominalEndMinutes   = 17 * 60 // 17:00
)

// estimatedWorkedDayFactor backs the "ngày đi làm" approximation:
// floor(0.8 x distinct event days).
const estimatedWorkedDayFactor = 0.8

// dayKey truncates to the calendar date of the event's Date field,
// independent of its time-of-day and of ScanTime's own date component.
func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func validEvent(e scan.Event) bool {
	return !e.Date.IsZero() && !e.ScanTime.IsZero()
}

// Reconcile groups events by the calendar day of their Date and derives
// one attendance.Daily per day, sorted most recent day first.
//
// Within a day the FIRST arrival-kind event in input order supplies the
// check-in and the FIRST departure-kind event the check-out. Duplicate
// scans keep the first encountered, not the chronologically earliest;
// downstream views depend on that ordering contract.
func Reconcile(events []scan.Event) []attendance.Daily {
	byDay := make(map[time.Time]*attendance.Daily)

	for _, e := range events {
		if !validEvent(e) {
			slog.Warn("skipping scan event with unparsable timestamp",
				"type", string(e.Type), "shift", e.ShiftName)
			continue
		}

		key := dayKey(e.Date)
		day, ok := byDay[key]
		if !ok {
			day = &attendance.Daily{Date: key}
			byDay[key] = day
		}

		if day.ShiftName == "" && e.ShiftName != "" {
			day.ShiftName = e.ShiftName
		}

		switch {
		case e.Type.IsArrival():
			if day.CheckIn == nil {
				t := e.ScanTime
				day.CheckIn = &t
			}
		case e.Type.IsDeparture():
			if day.CheckOut == nil {
				t := e.ScanTime
				day.CheckOut = &t
			}
		}
	}

	out := make([]attendance.Daily, 0, len(byDay))
	for _, day := range byDay {
		day.WorkHours = workHours(day.CheckIn, day.CheckOut)
		out = append(out, *day)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// workHours is max(0, checkOut-checkIn) in hours. A check-out before the
// check-in (clock skew, bad data) degrades to 0, never negative.
func workHours(checkIn, checkOut *time.Time) float64 {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	hours := checkOut.Sub(*checkIn).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// MonthlyCalendar classifies every day of the month, including days with
// no events. The "leave" status is an overlay applied by the caller from
// approved leave requests; this function only produces the other four.
func MonthlyCalendar(events []scan.Event, year int, month time.Month) []attendance.CalendarDay {
	daily := Reconcile(events)

	byDay := make(map[int]attendance.Daily, len(daily))
	for _, d := range daily {
		if d.Date.Year() == year && d.Date.Month() == month {
			byDay[d.Date.Day()] = d
		}
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	out := make([]attendance.CalendarDay, 0, daysInMonth)
	for dom := 1; dom <= daysInMonth; dom++ {
		status := attendance.DayStatusAbsent
		if d, ok := byDay[dom]; ok {
			switch {
			case d.CheckIn != nil && d.CheckOut != nil:
				status = attendance.DayStatusPresent
			case d.CheckIn != nil:
				status = attendance.DayStatusMissCheckout
			case d.CheckOut != nil:
				status = attendance.DayStatusMissCheckin
			}
		}
		out = append(out, attendance.CalendarDay{
			Date:   time.Date(year, month, dom, 0, 0, 0, 0, time.UTC),
			Status: status,
		})
	}
	return out
}

// MonthlySummary aggregates the month's events for the summary view.
// Late minutes count from the nominal 08:00 boundary and early-departure
// minutes to the nominal 17:00 boundary, both clamped at zero.
func MonthlySummary(events []scan.Event, year int, month time.Month) attendance.MonthlySummary {
	var sum attendance.MonthlySummary
	seenDays := make(map[time.Time]struct{})

	for _, e := range events {
		if !validEvent(e) {
			slog.Warn("skipping scan event with unparsable timestamp",
				"type", string(e.Type), "shift", e.ShiftName)
			continue
		}
		if e.Date.Year() != year || e.Date.Month() != month {
			continue
		}

		seenDays[dayKey(e.Date)] = struct{}{}
		scanMinutes := e.ScanTime.Hour()*60 + e.ScanTime.Minute()

		switch e.Type {
		case scan.TypeLateArrival:
			sum.LateArrivalCount++
			if late := scanMinutes - nominalStartMinutes; late > 0 {
				sum.LateArrivalMinutes += late
			}
		case scan.TypeEarlyDeparture:
			sum.EarlyDepartureCount++
			if early := nominalEndMinutes - scanMinutes; early > 0 {
				sum.EarlyDepartureMinutes += early
			}
		}
	}

	sum.TotalWorkDays = len(seenDays)
	sum.EstimatedWorkedDays = int(math.Floor(estimatedWorkedDayFactor * float64(sum.TotalWorkDays)))
	return sum
}
