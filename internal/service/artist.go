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

// ArtistProfile is the writable part of an artist profile. Every field
// except the name may be left empty.
type ArtistProfile struct {
	Name      string `json:"name" validate:"required,min=1,max=120"`
	Location  string `json:"location,omitempty" validate:"omitempty,max=120"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,max=120"`
	Website   string `json:"website,omitempty" validate:"omitempty,url"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// ArtistService manages artist profiles. Each authenticated user owns
// at most one profile, keyed by user ID.
type ArtistService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

func NewArtistService(s *store.Store, v *validation.Validator, logger *slog.Logger) *ArtistService {
	return &ArtistService{
		store:     s,
		validator: v,
		logger:    logger.With(slog.String("service", "artists")),
	}
}

// Upsert creates the caller's artist profile or updates it in place.
// The profile keeps its ID and creation time across updates, so tattoos
// and likes referencing the artist stay valid.
func (s *ArtistService) Upsert(ctx context.Context, userID string, profile ArtistProfile) (*domain.Artist, error) {
	if err := s.validator.Validate(profile); err != nil {
		return nil, err
	}

	existing, err := s.store.GetArtistByUserID(ctx, userID)
	switch {
	case err == nil:
		applyProfile(existing, profile)
		existing.Touch()
		if err := s.store.UpdateArtist(ctx, existing); err != nil {
			return nil, errors.Wrap(err, errors.CodeUnavailable, "updating artist")
		}
		s.logger.InfoContext(ctx, "updated artist profile", slog.String("artist_id", existing.ID))
		return existing, nil

	case errors.Is(err, store.ErrArtistNotFound):
		artist := &domain.Artist{
			ID:     id.MustGenerate(id.PrefixArtist),
			UserID: userID,
		}
		applyProfile(artist, profile)
		artist.InitTimestamps()
		if err := s.store.CreateArtist(ctx, artist); err != nil {
			return nil, errors.Wrap(err, errors.CodeUnavailable, "creating artist")
		}
		s.logger.InfoContext(ctx, "created artist profile", slog.String("artist_id", artist.ID))
		return artist, nil

	default:
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading artist")
	}
}

func applyProfile(a *domain.Artist, p ArtistProfile) {
	a.Name = p.Name
	a.Location = p.Location
	a.Bio = p.Bio
	a.Instagram = p.Instagram
	a.Website = p.Website
	a.Email = p.Email
	a.Phone = p.Phone
}

// Get returns a single artist by ID.
func (s *ArtistService) Get(ctx context.Context, artistID string) (*domain.Artist, error) {
	artist, err := s.store.GetArtist(ctx, artistID)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return nil, errors.NotFoundf("artist %s not found", artistID)
		}
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading artist")
	}
	return artist, nil
}

// GetByUserID returns the artist profile owned by a user, if any.
func (s *ArtistService) GetByUserID(ctx context.Context, userID string) (*domain.Artist, error) {
	artist, err := s.store.GetArtistByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return nil, errors.NotFound("no artist profile for this user")
		}
		return nil, errors.Wrap(err, errors.CodeUnavailable, "loading artist")
	}
	return artist, nil
}

// List returns every artist in the gallery.
func (s *ArtistService) List(ctx context.Context) ([]*domain.Artist, error) {
	artists, err := s.store.ListArtists(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "listing artists")
	}
	return artists, nil
}
