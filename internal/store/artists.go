package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkmatch/inkmatch-server/internal/domain"
)

// CreateArtist stores a new artist profile.
func (s *Store) CreateArtist(ctx context.Context, artist *domain.Artist) error {
	if err := s.Artists.Create(ctx, artist.ID, artist); err != nil {
		return fmt.Errorf("create artist: %w", err)
	}
	return nil
}

// GetArtist retrieves an artist by ID.
func (s *Store) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	artist, err := s.Artists.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return artist, nil
}

// GetArtistByUserID resolves the artist profile owned by an authenticated user.
func (s *Store) GetArtistByUserID(ctx context.Context, userID string) (*domain.Artist, error) {
	artist, err := s.Artists.GetByUniqueIndex(ctx, "user", userID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get artist by user: %w", err)
	}
	return artist, nil
}

// UpdateArtist replaces an existing artist profile.
func (s *Store) UpdateArtist(ctx context.Context, artist *domain.Artist) error {
	err := s.Artists.Update(ctx, artist.ID, artist)
	if errors.Is(err, ErrNotFound) {
		return ErrArtistNotFound
	}
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	return nil
}

// ListArtists returns all artist profiles.
func (s *Store) ListArtists(ctx context.Context) ([]*domain.Artist, error) {
	var artists []*domain.Artist
	for artist, err := range s.Artists.List(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list artists: %w", err)
		}
		artists = append(artists, artist)
	}
	return artists, nil
}

// GetArtistsByIDs batch-fetches artists. Missing artists are skipped, not
// errors: ranking enrichment tolerates profiles deleted since the likes
// were recorded.
func (s *Store) GetArtistsByIDs(ctx context.Context, ids []string) (map[string]*domain.Artist, error) {
	out := make(map[string]*domain.Artist, len(ids))
	for _, id := range ids {
		artist, err := s.Artists.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get artist %s: %w", id, err)
		}
		out[id] = artist
	}
	return out, nil
}
