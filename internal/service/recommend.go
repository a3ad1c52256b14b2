package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/inkmatch/inkmatch-server/internal/errors"
	"github.com/inkmatch/inkmatch-server/internal/store"
)

// DefaultTopArtists is the limit applied when the caller does not ask
// for a specific number of recommendations.
const DefaultTopArtists = 5

// RecommendationService ranks artists by how many of their tattoos a
// viewer has liked.
type RecommendationService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewRecommendationService(s *store.Store, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{
		store:  s,
		logger: logger.With(slog.String("service", "recommend")),
	}
}

// TopArtists returns up to limit artists ordered by descending score,
// ties broken by ascending artist ID so the ranking is stable across
// calls. A limit of zero or less falls back to DefaultTopArtists.
//
// Likes pointing at deleted tattoos contribute nothing, and artists
// whose profile has since vanished are dropped from the result rather
// than failing the query. A viewer with no likes gets an empty slice.
func (s *RecommendationService) TopArtists(ctx context.Context, viewerID string, limit int) ([]domain.RankedArtist, error) {
	if limit <= 0 {
		limit = DefaultTopArtists
	}

	likes, err := s.store.GetLikes(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading likes")
	}
	if len(likes) == 0 {
		return []domain.RankedArtist{}, nil
	}

	tattoos, err := s.store.GetTattoosByIDs(ctx, likes.TattooIDs())
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "resolving liked tattoos")
	}
	tattooArtist := make(map[string]string, len(tattoos))
	for tattooID, t := range tattoos {
		tattooArtist[tattooID] = t.ArtistID
	}

	scores := Score(likes, tattooArtist)
	if len(scores) == 0 {
		return []domain.RankedArtist{}, nil
	}

	ranked := make([]domain.ArtistScore, 0, len(scores))
	for _, sc := range scores {
		ranked = append(ranked, sc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ArtistID < ranked[j].ArtistID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	artistIDs := make([]string, len(ranked))
	for i, sc := range ranked {
		artistIDs[i] = sc.ArtistID
	}
	artists, err := s.store.GetArtistsByIDs(ctx, artistIDs)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "resolving artists")
	}

	result := make([]domain.RankedArtist, 0, len(ranked))
	for _, sc := range ranked {
		artist, ok := artists[sc.ArtistID]
		if !ok {
			s.logger.WarnContext(ctx, "scored artist no longer exists",
				slog.String("artist_id", sc.ArtistID))
			continue
		}
		result = append(result, domain.RankedArtist{ArtistScore: sc, Artist: *artist})
	}
	return result, nil
}
