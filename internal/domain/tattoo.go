package domain

// Tattoo is a single catalog entry owned by exactly one artist.
// The ID is immutable once created; only the owning artist may mutate
// or delete the record.
type Tattoo struct {
	ID          string   `json:"id"`
	ArtistID    string   `json:"artistId"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Location    string   `json:"location,omitempty"` // where the tattoo was done, may differ from the artist's base
	Style       string   `json:"style,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	BodyPart    string   `json:"bodyPart,omitempty"`
	Color       *bool    `json:"color,omitempty"` // true = color, false = black & grey, nil = unspecified
	Size        string   `json:"size,omitempty"`
	Timestamps
}
