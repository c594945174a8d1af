package scan

import (
	"strings"
	"time"
)

// Type classifies a raw scan event. The backend stores the Vietnamese
// labels verbatim; this closed enum replaces the scattered string
// comparisons so that a typo cannot silently drop an event kind.
type Type string

const (
	TypeArrival        Type = "ĐiLam"  // on-time arrival
	TypeLateArrival    Type = "Đi trễ" // late arrival
	TypeDeparture      Type = "Về"     // on-time departure
	TypeEarlyDeparture Type = "Về sớm" // early departure
)

// ParseType normalizes a raw type label from the backend. Unknown labels
// return ErrUnknownScanType; callers decide whether to skip or fail.
func ParseType(raw string) (Type, error) {
	switch Type(strings.TrimSpace(raw)) {
	case TypeArrival:
		return TypeArrival, nil
	case TypeLateArrival:
		return TypeLateArrival, nil
	case TypeDeparture:
		return TypeDeparture, nil
	case TypeEarlyDeparture:
		return TypeEarlyDeparture, nil
	}
	return "", ErrUnknownScanType
}

// IsArrival reports whether the type counts as a check-in kind.
func (t Type) IsArrival() bool {
	return t == TypeArrival || t == TypeLateArrival
}

// IsDeparture reports whether the type counts as a check-out kind.
func (t Type) IsDeparture() bool {
	return t == TypeDeparture || t == TypeEarlyDeparture
}

// Event is one raw arrival/departure record. Date carries the calendar
// day the event belongs to; ScanTime the actual wall-clock instant.
// A zero Date or ScanTime marks a record whose backend timestamp did not
// parse; the reconciler skips those.
type Event struct {
	Date      time.Time
	ScanTime  time.Time
	Type      Type
	ShiftName string
}
