package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkmatch/inkmatch-server/internal/domain"
)

func (s *Server) registerRecommendationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "topArtists",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommendations/artists",
		Summary:     "Top artists",
		Description: "Returns artists ranked by the current viewer's likes",
		Tags:        []string{"Recommendations"},
	}, s.handleTopArtists)
}

// === DTOs ===

// RankedArtistResponse pairs an artist profile with its viewer-specific score.
type RankedArtistResponse struct {
	Artist       ArtistResponse `json:"artist" doc:"Artist profile"`
	Score        float64        `json:"score" doc:"Ranking score for this viewer"`
	LikedTattoos int            `json:"liked_tattoos" doc:"Number of this artist's tattoos the viewer liked"`
}

func toRankedArtistResponse(ra domain.RankedArtist) RankedArtistResponse {
	return RankedArtistResponse{
		Artist:       toArtistResponse(&ra.Artist),
		Score:        ra.Score,
		LikedTattoos: ra.LikedTattoos,
	}
}

// TopArtistsResponse contains the ranked artist list.
type TopArtistsResponse struct {
	Artists []RankedArtistResponse `json:"artists" doc:"Artists ordered by descending score"`
}

// TopArtistsOutput wraps the top artists response for Huma.
type TopArtistsOutput struct {
	Body TopArtistsResponse
}

// TopArtistsInput contains parameters for the top artists query.
type TopArtistsInput struct {
	Limit int `query:"limit" doc:"Maximum number of artists to return" minimum:"0" maximum:"100"`
}

// === Handlers ===

func (s *Server) handleTopArtists(ctx context.Context, input *TopArtistsInput) (*TopArtistsOutput, error) {
	viewerID, err := GetViewerID(ctx)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.recommendLimit
	}

	ranked, err := s.services.Recommend.TopArtists(ctx, viewerID, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]RankedArtistResponse, len(ranked))
	for i, ra := range ranked {
		resp[i] = toRankedArtistResponse(ra)
	}

	return &TopArtistsOutput{Body: TopArtistsResponse{Artists: resp}}, nil
}
