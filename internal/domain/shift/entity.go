package shift

// ShiftDetail is one weekly recurrence entry of a work shift. DayOfWeek
// uses the backend's Vietnamese day-name vocabulary in either the long
// form ("Thứ hai") or the short form ("Thứ 2"). StartTime and EndTime are
// "HH:mm" wall-clock strings.
type ShiftDetail struct {
	DayOfWeek string
	StartTime string
	EndTime   string
}

// WorkShift is a named shift recurring on one or more days per week.
// Fetched read-only from the backend.
type WorkShift struct {
	ID      string
	Name    string
	Details []ShiftDetail
}
