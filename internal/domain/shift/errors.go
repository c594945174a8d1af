package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("work shift not found")
)
