package machine

// MachineDTO mirrors the backend payload. Latitude, longitude and radius
// arrive as numeric strings.
type MachineDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
	AllowedRadius string `json:"allowed_radius"`
}
