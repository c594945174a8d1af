package scan

import (
	"context"
	"time"
)

// EventRepository reads and appends raw scan events. Events are
// append-only from the backend's point of view; the client only reads
// history and submits new scans.
type EventRepository interface {
	// ListRange returns all events whose date falls in [from, to].
	ListRange(ctx context.Context, from, to time.Time) ([]Event, error)

	// Submit records a check-in/check-out action.
	Submit(ctx context.Context, req SubmitRequest) (Event, error)
}
