package service

import "github.com/inkmatch/inkmatch-server/internal/domain"

// Score aggregates a viewer's likes by owning artist.
//
// tattooArtist maps tattoo ID to owning artist ID. Likes whose tattoo is
// absent from the mapping (deleted since the like was recorded) are
// skipped, not errors. The score is the plain like count; the LikeSet's
// one-like-per-tattoo invariant rules out double counting.
//
// Output is unordered; ranking is the caller's job.
func Score(likes domain.LikeSet, tattooArtist map[string]string) map[string]domain.ArtistScore {
	scores := make(map[string]domain.ArtistScore)
	for _, like := range likes {
		artistID, ok := tattooArtist[like.TattooID]
		if !ok {
			continue
		}
		sc := scores[artistID]
		sc.ArtistID = artistID
		sc.LikedTattoos++
		sc.Score = float64(sc.LikedTattoos)
		scores[artistID] = sc
	}
	return scores
}
