package employee

// Profile is the authenticated employee's own record.
type Profile struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Department string `json:"department"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	JoinDate   string `json:"join_date,omitempty"` // YYYY-MM-DD
}
