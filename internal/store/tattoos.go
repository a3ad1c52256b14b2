package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkmatch/inkmatch-server/internal/domain"
)

// CreateTattoo stores a new tattoo and publishes it to the search index.
func (s *Store) CreateTattoo(ctx context.Context, tattoo *domain.Tattoo) error {
	if err := s.Tattoos.Create(ctx, tattoo.ID, tattoo); err != nil {
		return fmt.Errorf("create tattoo: %w", err)
	}
	s.indexTattooAsync(tattoo)
	return nil
}

// GetTattoo retrieves a tattoo by ID.
func (s *Store) GetTattoo(ctx context.Context, id string) (*domain.Tattoo, error) {
	tattoo, err := s.Tattoos.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrTattooNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tattoo: %w", err)
	}
	return tattoo, nil
}

// UpdateTattoo replaces an existing tattoo and refreshes the search index.
func (s *Store) UpdateTattoo(ctx context.Context, tattoo *domain.Tattoo) error {
	err := s.Tattoos.Update(ctx, tattoo.ID, tattoo)
	if errors.Is(err, ErrNotFound) {
		return ErrTattooNotFound
	}
	if err != nil {
		return fmt.Errorf("update tattoo: %w", err)
	}
	s.indexTattooAsync(tattoo)
	return nil
}

// DeleteTattoo removes a tattoo and its search document.
// Idempotent: deleting a missing tattoo is not an error.
func (s *Store) DeleteTattoo(ctx context.Context, id string) error {
	if err := s.Tattoos.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tattoo: %w", err)
	}
	s.deleteTattooIndexAsync(id)
	return nil
}

// GetTattoosByArtist returns all tattoos owned by one artist.
func (s *Store) GetTattoosByArtist(ctx context.Context, artistID string) ([]*domain.Tattoo, error) {
	tattoos, err := s.Tattoos.ListByGroupedIndex(ctx, "artist", artistID)
	if err != nil {
		return nil, fmt.Errorf("list tattoos by artist: %w", err)
	}
	return tattoos, nil
}

// ListTattoos returns the full catalog.
func (s *Store) ListTattoos(ctx context.Context) ([]*domain.Tattoo, error) {
	var tattoos []*domain.Tattoo
	for tattoo, err := range s.Tattoos.List(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list tattoos: %w", err)
		}
		tattoos = append(tattoos, tattoo)
	}
	return tattoos, nil
}

// GetTattoosByIDs batch-fetches tattoos. Missing tattoos are skipped, not
// errors: a liked tattoo may have been deleted since, and scoring treats
// that as "no longer resolvable" rather than a failure.
func (s *Store) GetTattoosByIDs(ctx context.Context, ids []string) (map[string]*domain.Tattoo, error) {
	out := make(map[string]*domain.Tattoo, len(ids))
	for _, id := range ids {
		tattoo, err := s.Tattoos.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get tattoo %s: %w", id, err)
		}
		out[id] = tattoo
	}
	return out, nil
}

// indexTattooAsync publishes a tattoo to the search index in the background.
// Index failures are logged, never surfaced: search lags are acceptable,
// catalog writes are not.
func (s *Store) indexTattooAsync(tattoo *domain.Tattoo) {
	if s.searchIndexer == nil {
		return
	}
	t := *tattoo
	go func() {
		if err := s.searchIndexer.IndexTattoo(context.Background(), &t); err != nil && s.logger != nil {
			s.logger.Error("failed to index tattoo", "tattoo_id", t.ID, "error", err)
		}
	}()
}

func (s *Store) deleteTattooIndexAsync(id string) {
	if s.searchIndexer == nil {
		return
	}
	go func() {
		if err := s.searchIndexer.DeleteTattoo(context.Background(), id); err != nil && s.logger != nil {
			s.logger.Error("failed to remove tattoo from index", "tattoo_id", id, "error", err)
		}
	}()
}
