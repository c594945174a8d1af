package scan

import (
	"time"

	"github.com/hrmviet/chamcong-go/internal/pkg/validator"
)

type EventDTO struct {
	Date      string `json:"date"`
	ScanTime  string `json:"scan_time"`
	Type      string `json:"type"`
	ShiftName string `json:"shift_name,omitempty"`
}

// SubmitRequest is the payload for a check-in/check-out action.
type SubmitRequest struct {
	MachineID string    `json:"machine_id"`
	ShiftID   string    `json:"shift_id"`
	ShiftName string    `json:"shift_name"`
	Type      Type      `json:"type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	At        time.Time `json:"scan_time"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MachineID) {
		errs = append(errs, validator.ValidationError{
			Field:   "machine_id",
			Message: "machine_id is required",
		})
	}

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if _, err := ParseType(string(r.Type)); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: ĐiLam, Đi trễ, Về, Về sớm",
		})
	}

	if r.At.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "scan_time",
			Message: "scan_time is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
