package service

import (
	"context"
	"log/slog"

	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/inkmatch/inkmatch-server/internal/errors"
	"github.com/inkmatch/inkmatch-server/internal/store"
)

// LikeService maintains the per-viewer like ledger.
//
// Each viewer owns a single ledger document. Toggle is read-modify-write
// on that document without cross-request coordination; when two requests
// for the same viewer race, the last write wins and the earlier toggle
// is silently dropped. That is the intended contract for this data --
// a liked tattoo is a hint, not a transaction.
type LikeService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewLikeService(s *store.Store, logger *slog.Logger) *LikeService {
	return &LikeService{
		store:  s,
		logger: logger.With(slog.String("service", "likes")),
	}
}

// GetLikes returns the viewer's current like set. Unknown viewers get an
// empty set, never an error.
func (s *LikeService) GetLikes(ctx context.Context, viewerID string) (domain.LikeSet, error) {
	likes, err := s.store.GetLikes(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading likes")
	}
	return likes, nil
}

// ToggleLike flips the viewer's like for a tattoo and reports the new
// state: true when the tattoo is now liked, false when the toggle
// removed an existing like. Unliking a tattoo that was never liked is a
// no-op that reports false.
//
// The tattoo is not required to exist; likes may reference tattoos that
// were deleted after the fact, and scoring skips those.
func (s *LikeService) ToggleLike(ctx context.Context, viewerID, tattooID string) (bool, error) {
	likes, err := s.store.GetLikes(ctx, viewerID)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeUnavailable, "loading likes")
	}

	var next domain.LikeSet
	liked := !likes.Has(tattooID)
	if liked {
		next = likes.With(tattooID)
	} else {
		next = likes.Without(tattooID)
	}

	if err := s.store.SetLikes(ctx, viewerID, next); err != nil {
		return false, errors.Wrap(err, errors.CodeUnavailable, "saving likes")
	}

	s.logger.DebugContext(ctx, "toggled like",
		slog.String("viewer_id", viewerID),
		slog.String("tattoo_id", tattooID),
		slog.Bool("liked", liked))
	return liked, nil
}

// IsLiked reports whether the viewer currently likes the tattoo.
func (s *LikeService) IsLiked(ctx context.Context, viewerID, tattooID string) (bool, error) {
	likes, err := s.store.GetLikes(ctx, viewerID)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeUnavailable, "loading likes")
	}
	return likes.Has(tattooID), nil
}
