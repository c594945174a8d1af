package leave

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// ApprovalStatus is the closed form of the backend's approval field,
// which arrives sometimes as an integer (0/1/2) and sometimes as a
// string. Normalization happens once, at decode time.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
	StatusUnknown  ApprovalStatus = "unknown"
)

// UnmarshalJSON accepts 0/1/2, "0"/"1"/"2" and the named forms.
func (s *ApprovalStatus) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	switch strings.ToLower(raw) {
	case "0", "pending", "cho duyet", "chờ duyệt":
		*s = StatusPending
	case "1", "approved", "da duyet", "đã duyệt":
		*s = StatusApproved
	case "2", "rejected", "tu choi", "từ chối":
		*s = StatusRejected
	default:
		*s = StatusUnknown
	}
	return nil
}

// Request is one leave request of the authenticated employee.
type Request struct {
	ID        string         `json:"id"`
	LeaveType string         `json:"leave_type"`
	StartDate time.Time      `json:"-"`
	EndDate   time.Time      `json:"-"`
	Reason    string         `json:"reason"`
	Status    ApprovalStatus `json:"status"`
}

// Covers reports whether day falls inside the request's date range,
// comparing calendar days only.
func (r Request) Covers(day time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(r.StartDate.Year(), r.StartDate.Month(), r.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.EndDate.Year(), r.EndDate.Month(), r.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}

var _ json.Unmarshaler = (*ApprovalStatus)(nil)
