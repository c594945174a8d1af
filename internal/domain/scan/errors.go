package scan

import "errors"

var (
	ErrUnknownScanType = errors.New("unknown scan event type")
)
