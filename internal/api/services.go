package api

import (
	"github.com/inkmatch/inkmatch-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Artist    *service.ArtistService
	Tattoo    *service.TattooService
	Like      *service.LikeService
	Recommend *service.RecommendationService
}
