package domain

// Artist represents a tattoo artist's public profile.
// UserID links the profile to an external authenticated identity;
// at most one profile exists per user.
type Artist struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Bio       string `json:"bio,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Timestamps
}
