package overtime

import "github.com/hrmviet/chamcong-go/internal/domain/leave"

// Request is one overtime request. Approval status shares the leave
// package's normalized enum since the backend uses the same field shape.
type Request struct {
	ID        string               `json:"id"`
	Date      string               `json:"date"`       // YYYY-MM-DD
	StartTime string               `json:"start_time"` // HH:mm
	EndTime   string               `json:"end_time"`   // HH:mm
	Reason    string               `json:"reason"`
	Status    leave.ApprovalStatus `json:"status"`
}
