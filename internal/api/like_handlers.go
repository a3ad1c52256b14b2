package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkmatch/inkmatch-server/internal/errors"
)

func (s *Server) registerLikeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listLikes",
		Method:      http.MethodGet,
		Path:        "/api/v1/likes",
		Summary:     "List likes",
		Description: "Returns the tattoo IDs the current viewer has liked",
		Tags:        []string{"Likes"},
	}, s.handleListLikes)

	huma.Register(s.api, huma.Operation{
		OperationID: "getLikeStatus",
		Method:      http.MethodGet,
		Path:        "/api/v1/likes/{tattooId}",
		Summary:     "Get like status",
		Description: "Returns whether the current viewer has liked a tattoo",
		Tags:        []string{"Likes"},
	}, s.handleGetLikeStatus)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleLike",
		Method:      http.MethodPost,
		Path:        "/api/v1/likes/{tattooId}/toggle",
		Summary:     "Toggle like",
		Description: "Flips the current viewer's like on a tattoo and returns the new state",
		Tags:        []string{"Likes"},
	}, s.handleToggleLike)
}

// === DTOs ===

// ListLikesResponse contains the viewer's liked tattoo IDs.
type ListLikesResponse struct {
	TattooIDs []string `json:"tattoo_ids" doc:"Liked tattoo IDs, most recent last"`
}

// ListLikesOutput wraps the list likes response for Huma.
type ListLikesOutput struct {
	Body ListLikesResponse
}

// LikeStatusResponse reports the like state for one tattoo.
type LikeStatusResponse struct {
	TattooID string `json:"tattoo_id" doc:"Tattoo ID"`
	Liked    bool   `json:"liked" doc:"Whether the viewer currently likes this tattoo"`
}

// LikeStatusOutput wraps the like status response for Huma.
type LikeStatusOutput struct {
	Body LikeStatusResponse
}

// LikeStatusInput contains parameters for checking a like.
type LikeStatusInput struct {
	TattooID string `path:"tattooId" doc:"Tattoo ID"`
}

// ToggleLikeInput contains parameters for toggling a like.
type ToggleLikeInput struct {
	TattooID string `path:"tattooId" doc:"Tattoo ID"`
}

// === Handlers ===

func (s *Server) handleListLikes(ctx context.Context, _ *struct{}) (*ListLikesOutput, error) {
	viewerID, err := GetViewerID(ctx)
	if err != nil {
		return nil, err
	}

	likes, err := s.services.Like.GetLikes(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	return &ListLikesOutput{Body: ListLikesResponse{TattooIDs: likes.TattooIDs()}}, nil
}

func (s *Server) handleGetLikeStatus(ctx context.Context, input *LikeStatusInput) (*LikeStatusOutput, error) {
	viewerID, err := GetViewerID(ctx)
	if err != nil {
		return nil, err
	}

	liked, err := s.services.Like.IsLiked(ctx, viewerID, input.TattooID)
	if err != nil {
		return nil, err
	}

	return &LikeStatusOutput{
		Body: LikeStatusResponse{TattooID: input.TattooID, Liked: liked},
	}, nil
}

func (s *Server) handleToggleLike(ctx context.Context, input *ToggleLikeInput) (*LikeStatusOutput, error) {
	viewerID, err := GetViewerID(ctx)
	if err != nil {
		return nil, err
	}

	if s.likeLimiter != nil && !s.likeLimiter.Allow(viewerID) {
		return nil, errors.RateLimited("too many like toggles, slow down")
	}

	liked, err := s.services.Like.ToggleLike(ctx, viewerID, input.TattooID)
	if err != nil {
		return nil, err
	}

	return &LikeStatusOutput{
		Body: LikeStatusResponse{TattooID: input.TattooID, Liked: liked},
	}, nil
}
