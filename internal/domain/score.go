package domain

// ArtistScore is a derived, per-viewer ranking metric for one artist.
// It is computed fresh on every query and never persisted.
type ArtistScore struct {
	ArtistID     string  `json:"artistId"`
	Score        float64 `json:"score"`
	LikedTattoos int     `json:"likedTattoos"`
}

// RankedArtist pairs a score with the artist's profile for display.
type RankedArtist struct {
	ArtistScore
	Artist Artist `json:"artist"`
}
