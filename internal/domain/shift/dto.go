package shift

type ShiftDetailDTO struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkShiftDTO struct {
	ID           string           `json:"id"`
	ShiftName    string           `json:"shift_name"`
	ShiftDetails []ShiftDetailDTO `json:"shift_details"`
}
