package machine

import "errors"

var (
	ErrNoMachines = errors.New("no attendance machines registered")
)
