package service

import (
	"context"
	"log/slog"

	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/inkmatch/inkmatch-server/internal/errors"
	"github.com/inkmatch/inkmatch-server/internal/id"
	"github.com/inkmatch/inkmatch-server/internal/store"
	"github.com/inkmatch/inkmatch-server/internal/validation"
)

// TattooUpload holds the fields a tattoo is created or updated with.
// Price is in whole currency units and must be positive.
type TattooUpload struct {
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Location    string   `json:"location,omitempty" validate:"omitempty,max=120"`
	Style       string   `json:"style,omitempty" validate:"omitempty,max=64"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=40"`
	BodyPart    string   `json:"bodyPart,omitempty" validate:"omitempty,max=64"`
	Color       *bool    `json:"color,omitempty"`
	Size        string   `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
}

// TattooService manages the tattoo catalog. All mutations run through
// the ownership guard; validation happens before anything touches the
// store so a rejected upload leaves no partial writes behind.
type TattooService struct {
	store     *store.Store
	guard     *OwnershipGuard
	validator *validation.Validator
	logger    *slog.Logger
}

func NewTattooService(s *store.Store, guard *OwnershipGuard, v *validation.Validator, logger *slog.Logger) *TattooService {
	return &TattooService{
		store:     s,
		guard:     guard,
		validator: v,
		logger:    logger.With(slog.String("service", "tattoos")),
	}
}

// Upload creates a tattoo under the caller's artist profile. Users
// without a profile cannot upload.
func (s *TattooService) Upload(ctx context.Context, userID string, upload TattooUpload) (*domain.Tattoo, error) {
	if err := s.validator.Validate(upload); err != nil {
		return nil, err
	}

	artist, err := s.store.GetArtistByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return nil, errors.PermissionDenied("create an artist profile before uploading tattoos")
		}
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading artist")
	}

	tattoo := &domain.Tattoo{
		ID:       id.MustGenerate(id.PrefixTattoo),
		ArtistID: artist.ID,
	}
	applyUpload(tattoo, upload)
	tattoo.InitTimestamps()

	if err := s.store.CreateTattoo(ctx, tattoo); err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "creating tattoo")
	}
	s.logger.InfoContext(ctx, "uploaded tattoo",
		slog.String("tattoo_id", tattoo.ID),
		slog.String("artist_id", artist.ID))
	return tattoo, nil
}

// Update replaces a tattoo's fields. Only the owning artist may update;
// the tattoo keeps its ID, owner and creation time.
func (s *TattooService) Update(ctx context.Context, userID, tattooID string, upload TattooUpload) (*domain.Tattoo, error) {
	if err := s.validator.Validate(upload); err != nil {
		return nil, err
	}

	tattoo, err := s.guard.RequireOwner(ctx, userID, tattooID)
	if err != nil {
		return nil, err
	}

	applyUpload(tattoo, upload)
	tattoo.Touch()
	if err := s.store.UpdateTattoo(ctx, tattoo); err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "updating tattoo")
	}
	s.logger.InfoContext(ctx, "updated tattoo", slog.String("tattoo_id", tattoo.ID))
	return tattoo, nil
}

// Delete removes a tattoo. Likes referencing it are left in place and
// simply stop counting toward its artist's score.
func (s *TattooService) Delete(ctx context.Context, userID, tattooID string) error {
	if _, err := s.guard.RequireOwner(ctx, userID, tattooID); err != nil {
		return err
	}
	if err := s.store.DeleteTattoo(ctx, tattooID); err != nil {
		return errors.Wrap(err, errors.CodeUnavailable, "deleting tattoo")
	}
	s.logger.InfoContext(ctx, "deleted tattoo", slog.String("tattoo_id", tattooID))
	return nil
}

func applyUpload(t *domain.Tattoo, u TattooUpload) {
	t.ImageURL = u.ImageURL
	t.Description = u.Description
	t.Price = u.Price
	t.Location = u.Location
	t.Style = u.Style
	t.Tags = u.Tags
	t.BodyPart = u.BodyPart
	t.Color = u.Color
	t.Size = u.Size
}

// Get returns a single tattoo by ID.
func (s *TattooService) Get(ctx context.Context, tattooID string) (*domain.Tattoo, error) {
	tattoo, err := s.store.GetTattoo(ctx, tattooID)
	if err != nil {
		if errors.Is(err, store.ErrTattooNotFound) {
			return nil, errors.NotFoundf("tattoo %s not found", tattooID)
		}
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading tattoo")
	}
	return tattoo, nil
}

// List returns the full gallery.
func (s *TattooService) List(ctx context.Context) ([]*domain.Tattoo, error) {
	tattoos, err := s.store.ListTattoos(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "listing tattoos")
	}
	return tattoos, nil
}

// ListByArtist returns an artist's portfolio. The artist must exist; an
// existing artist with no tattoos yields an empty slice.
func (s *TattooService) ListByArtist(ctx context.Context, artistID string) ([]*domain.Tattoo, error) {
	if _, err := s.store.GetArtist(ctx, artistID); err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return nil, errors.NotFoundf("artist %s not found", artistID)
		}
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading artist")
	}
	tattoos, err := s.store.GetTattoosByArtist(ctx, artistID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "listing tattoos")
	}
	return tattoos, nil
}
