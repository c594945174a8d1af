package employee

import "errors"

var (
	ErrProfileNotFound = errors.New("employee profile not found")
)
