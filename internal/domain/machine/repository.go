package machine

import "context"

// MachineRepository fetches the registered attendance machines.
type MachineRepository interface {
	// List returns the machine registry snapshot. Records with
	// unparsable coordinates are skipped, not returned as errors.
	List(ctx context.Context) ([]Machine, error)
}
