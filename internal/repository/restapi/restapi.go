// Package restapi implements the domain repositories over the backend's
// REST contract. All DTO-to-domain mapping lives here, including the
// parsing of numeric strings and timestamps: a malformed record degrades
// to a zero value (and is skipped or logged where the contract says so)
// instead of failing the whole fetch.
package restapi

import (
	"time"
)

// timestampLayouts are the shapes the backend emits, most common first.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses in the given location and returns the zero time
// when no layout matches. Offsets in RFC3339 values are preserved and
// converted into loc.
func parseTimestamp(value string, loc *time.Location) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc)
		}
	}
	return time.Time{}
}
