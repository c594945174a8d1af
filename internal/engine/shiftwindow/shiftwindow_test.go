package shiftwindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmviet/chamcong-go/internal/domain/shift"
)

func TestDayNumber(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Chủ nhật", 0},
		{"Thứ hai", 1},
		{"Thứ 2", 1},
		{"Thứ ba", 2},
		{"Thứ 3", 2},
		{"Thứ tư", 3},
		{"Thứ 4", 3},
		{"Thứ năm", 4},
		{"Thứ 5", 4},
		{"Thứ sáu", 5},
		{"Thứ 6", 5},
		{"Thứ bảy", 6},
		{"Thứ 7", 6},
		{"  thứ hai  ", 1},
		{"Monday", -1},
		{"", -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DayNumber(c.name), "DayNumber(%q)", c.name)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"08:00", 480, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{" 07:30 ", 450, false},
		{"24:00", 0, true},
		{"08:60", 0, true},
		{"-1:00", 0, true},
		{"0800", 0, true},
		{"08:00:00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.wantErr {
			assert.Error(t, err, "ParseClock(%q)", c.input)
			continue
		}
		require.NoError(t, err, "ParseClock(%q)", c.input)
		assert.Equal(t, c.want, got, "ParseClock(%q)", c.input)
	}
}

// monday is a Monday.
var monday = time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(monday.Year(), monday.Month(), monday.Day(), hour, minute, 0, 0, time.UTC)
}

var weekShifts = []shift.WorkShift{
	{
		ID:   "morning",
		Name: "Ca sáng",
		Details: []shift.ShiftDetail{
			{DayOfWeek: "Thứ hai", StartTime: "08:00", EndTime: "12:00"},
			{DayOfWeek: "Thứ 3", StartTime: "08:00", EndTime: "12:00"},
		},
	},
	{
		ID:   "evening",
		Name: "Ca tối",
		Details: []shift.ShiftDetail{
			{DayOfWeek: "Thứ hai", StartTime: "18:00", EndTime: "22:00"},
		},
	},
	{
		ID:   "weekend",
		Name: "Ca cuối tuần",
		Details: []shift.ShiftDetail{
			{DayOfWeek: "Chủ nhật", StartTime: "09:00", EndTime: "17:00"},
		},
	},
}

func TestShiftsForToday(t *testing.T) {
	got := ShiftsForToday(weekShifts, monday)
	require.Len(t, got, 2)
	assert.Equal(t, "morning", got[0].ID)
	assert.Equal(t, "evening", got[1].ID)

	sunday := monday.AddDate(0, 0, -1)
	got = ShiftsForToday(weekShifts, sunday)
	require.Len(t, got, 1)
	assert.Equal(t, "weekend", got[0].ID)

	assert.Empty(t, ShiftsForToday(nil, monday))
}

func TestCurrentTimeShiftsWindowBoundaries(t *testing.T) {
	cases := []struct {
		now  time.Time
		want []string
	}{
		{at(7, 29), nil},
		{at(7, 30), []string{"morning"}},
		{at(8, 0), []string{"morning"}},
		{at(8, 30), []string{"morning"}},
		{at(8, 31), nil},
		{at(17, 30), []string{"evening"}},
		{at(12, 0), nil},
	}
	for _, c := range cases {
		got, err := CurrentTimeShifts(weekShifts, c.now)
		require.NoError(t, err)
		ids := make([]string, 0, len(got))
		for _, s := range got {
			ids = append(ids, s.ID)
		}
		assert.Equal(t, c.want, nilIfEmpty(ids), "now=%s", c.now.Format("15:04"))
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestCurrentTimeShiftsMalformedStartTime(t *testing.T) {
	shifts := []shift.WorkShift{
		{
			ID:   "broken",
			Name: "Ca hỏng",
			Details: []shift.ShiftDetail{
				{DayOfWeek: "Thứ hai", StartTime: "8h00", EndTime: "12:00"},
			},
		},
	}

	_, err := CurrentTimeShifts(shifts, at(8, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ca hỏng")
}

func TestCurrentTimeShiftsOutsideAllWindows(t *testing.T) {
	got, err := CurrentTimeShifts(weekShifts, at(9, 0))
	require.NoError(t, err)
	assert.Empty(t, got)
}
