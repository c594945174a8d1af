// Package shiftwindow filters the employee's weekly shifts against an
// injected wall-clock instant: which shifts run today, and which are
// inside their check-in window. Pure functions; now is always a
// parameter so decisions stay deterministic under test.
package shiftwindow

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hrmviet/chamcong-go/internal/domain/shift"
)

// CheckinWindowMinutes is the fixed policy window around a shift's
// nominal start inside which check-in counts as "current". Not
// user-configurable.
const CheckinWindowMinutes = 30

// dayNumbers maps the backend's Vietnamese day names, both long and
// short spellings, to time.Weekday numbering (0=Sunday).
var dayNumbers = map[string]int{
	"chủ nhật": 0,
	"thứ hai":  1,
	"thứ 2":    1,
	"thứ ba":   2,
	"thứ 3":    2,
	"thứ tư":   3,
	"thứ 4":    3,
	"thứ năm":  4,
	"thứ 5":    4,
	"thứ sáu":  5,
	"thứ 6":    5,
	"thứ bảy":  6,
	"thứ 7":    6,
}

// DayNumber maps a day name to 0=Sunday..6=Saturday. Unrecognized names
// return -1 and therefore never match a weekday.
func DayNumber(name string) int {
	if n, ok := dayNumbers[strings.ToLower(strings.TrimSpace(name))]; ok {
		return n
	}
	return -1
}

// ParseClock parses "HH:mm" into minutes since midnight. Malformed input
// is an error for the caller to handle; a silent zero here could match
// the wrong shift.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock value %q out of range", value)
	}
	return hour*60 + minute, nil
}

// ShiftsForToday returns, in input order, the shifts with at least one
// detail scheduled on now's weekday. An empty result is a valid "no
// shift scheduled" state, not an error.
func ShiftsForToday(shifts []shift.WorkShift, now time.Time) []shift.WorkShift {
	today := int(now.Weekday())
	out := make([]shift.WorkShift, 0, len(shifts))
	for _, s := range shifts {
		for _, d := range s.Details {
			if DayNumber(d.DayOfWeek) == today {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// CurrentTimeShifts narrows ShiftsForToday to shifts whose start time is
// within CheckinWindowMinutes of now (inclusive on both ends). A shift
// detail with a malformed start time fails the whole call.
func CurrentTimeShifts(shifts []shift.WorkShift, now time.Time) ([]shift.WorkShift, error) {
	today := int(now.Weekday())
	nowMinutes := now.Hour()*60 + now.Minute()

	out := make([]shift.WorkShift, 0, len(shifts))
	for _, s := range shifts {
		for _, d := range s.Details {
			if DayNumber(d.DayOfWeek) != today {
				continue
			}
			start, err := ParseClock(d.StartTime)
			if err != nil {
				return nil, fmt.Errorf("shift %q: %w", s.Name, err)
			}
			if nowMinutes >= start-CheckinWindowMinutes && nowMinutes <= start+CheckinWindowMinutes {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}
