package attendance

import "errors"

// The check-in gate surfaces each failure mode as its own sentinel so the
// front-end can keep the messages distinct ("cannot get location" is not
// "outside the allowed radius").
var (
	ErrLocationUnavailable  = errors.New("current location is unavailable")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius of every attendance machine")
	ErrNoShiftSelected      = errors.New("no shift selected for this action")
)
