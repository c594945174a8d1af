package machine

// Coordinate is a WGS-84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Machine is a registered attendance terminal with its circular catchment.
// Snapshots are fetched read-only from the backend; the client never
// mutates them.
type Machine struct {
	ID                  string
	Name                string
	Coordinate          Coordinate
	AllowedRadiusMeters float64
}
