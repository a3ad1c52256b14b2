// Package store persists artists, tattoos, and per-viewer like ledgers
// in a Badger key-value database, one JSON document per key.
package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/inkmatch/inkmatch-server/internal/domain"
)

// SearchIndexer is the interface for keeping the search index in sync.
// Store uses this to publish tattoo changes without depending on the
// search implementation. Index updates run asynchronously so they never
// block store operations.
type SearchIndexer interface {
	IndexTattoo(ctx context.Context, t *domain.Tattoo) error
	DeleteTattoo(ctx context.Context, tattooID string) error
}

// NoopSearchIndexer is a no-op implementation for testing.
type NoopSearchIndexer struct{}

// IndexTattoo is a no-op.
func (NoopSearchIndexer) IndexTattoo(context.Context, *domain.Tattoo) error { return nil }

// DeleteTattoo is a no-op.
func (NoopSearchIndexer) DeleteTattoo(context.Context, string) error { return nil }

// NewNoopSearchIndexer creates a new no-op search indexer for testing.
func NewNoopSearchIndexer() SearchIndexer {
	return NoopSearchIndexer{}
}

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// Search indexer for keeping search in sync with catalog changes.
	// Set via SetSearchIndexer after store creation to avoid circular dependencies.
	searchIndexer SearchIndexer

	// Generic collections
	Artists *Entity[domain.Artist]
	Tattoos *Entity[domain.Tattoo]
}

// New creates a new Store instance at the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	store.initArtists()
	store.initTattoos()

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// SetSearchIndexer sets the search indexer for keeping search in sync.
// This is set after store creation to avoid circular dependencies
// (store must exist before the search service can be created).
func (s *Store) SetSearchIndexer(indexer SearchIndexer) {
	s.searchIndexer = indexer
}

// initArtists initializes the Artists collection.
// The user index enforces at most one artist profile per authenticated user.
func (s *Store) initArtists() {
	s.Artists = NewEntity[domain.Artist](s, "artist:").
		WithUniqueIndex("user", func(a *domain.Artist) []string {
			if a.UserID == "" {
				return nil
			}
			return []string{a.UserID}
		})
}

// initTattoos initializes the Tattoos collection.
// The artist index serves the "all tattoos by artist X" listing.
func (s *Store) initTattoos() {
	s.Tattoos = NewEntity[domain.Tattoo](s, "tattoo:").
		WithGroupedIndex("artist",
			func(t *domain.Tattoo) []string { return []string{t.ArtistID} },
			func(t *domain.Tattoo) string { return t.ID },
		)
}

// Helper methods for raw document operations (used by the like ledger).

// get retrieves a value by key.
func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// set stores a value by key.
func (s *Store) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// exists checks if a key exists.
func (s *Store) exists(key []byte) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
