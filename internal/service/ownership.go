package service

import (
	"context"

	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/inkmatch/inkmatch-server/internal/errors"
	"github.com/inkmatch/inkmatch-server/internal/store"
)

// OwnershipGuard decides whether a user may mutate a tattoo. The two
// failure modes are deliberately distinguishable: a missing tattoo is
// NOT_FOUND, while an existing tattoo owned by someone else is
// PERMISSION_DENIED. Callers that must not leak existence can collapse
// the two at the edge.
type OwnershipGuard struct {
	store *store.Store
}

func NewOwnershipGuard(s *store.Store) *OwnershipGuard {
	return &OwnershipGuard{store: s}
}

// RequireOwner returns the tattoo when userID's artist profile owns it.
// A user without an artist profile owns nothing.
func (g *OwnershipGuard) RequireOwner(ctx context.Context, userID, tattooID string) (*domain.Tattoo, error) {
	tattoo, err := g.store.GetTattoo(ctx, tattooID)
	if err != nil {
		if errors.Is(err, store.ErrTattooNotFound) {
			return nil, errors.NotFoundf("tattoo %s not found", tattooID)
		}
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading tattoo")
	}

	artist, err := g.store.GetArtistByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return nil, errors.PermissionDenied("you do not own this tattoo")
		}
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading artist")
	}

	if tattoo.ArtistID != artist.ID {
		return nil, errors.PermissionDenied("you do not own this tattoo")
	}
	return tattoo, nil
}
