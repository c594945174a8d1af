package attendance

import (
	"time"

	"github.com/hrmviet/chamcong-go/internal/domain/machine"
	"github.com/hrmviet/chamcong-go/internal/domain/shift"
)

// CheckinStatus is everything the check-in screen needs to gate the
// action button. The action itself is enabled by the logical AND of
// "location known", "in range" and "a shift is selected"; shift selection
// is caller state, so it is not part of this snapshot.
type CheckinStatus struct {
	// LocationKnown is false when no location fix was supplied;
	// eligibility is then indeterminate, not out-of-range.
	LocationKnown bool
	InRange       bool
	Machine       *machine.Machine

	TodayShifts   []shift.WorkShift
	CurrentShifts []shift.WorkShift
}

// ActionRequest carries the user's check-in/check-out intent. Now must be
// the caller's wall clock; it is threaded through so the decision is
// deterministic under test.
type ActionRequest struct {
	ShiftID  string
	Location *machine.Coordinate
	Now      time.Time
}
