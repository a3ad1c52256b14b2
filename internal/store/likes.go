package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/inkmatch/inkmatch-server/internal/domain"
)

const likesPrefix = "likes:"

// likesDoc is the stored shape of one viewer's like ledger: a single
// document per viewer, keyed by viewer ID.
type likesDoc struct {
	Likes     domain.LikeSet `json:"likes"`
	UpdatedAt int64          `json:"updatedAt"`
}

// GetLikes fetches the viewer's current like set.
// A viewer with no ledger yet gets an empty set, not an error.
func (s *Store) GetLikes(ctx context.Context, viewerID string) (domain.LikeSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc likesDoc
	err := s.get([]byte(likesPrefix+viewerID), &doc)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.LikeSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get likes: %w", err)
	}
	if doc.Likes == nil {
		return domain.LikeSet{}, nil
	}
	return doc.Likes, nil
}

// SetLikes writes the viewer's entire like set.
//
// This is a blind whole-document write: two toggles that read the same
// snapshot and write back resolve last-writer-wins, and the loser's change
// is dropped. That is the ledger's documented consistency contract —
// callers perform read-modify-write above this method and no lock
// serializes them.
func (s *Store) SetLikes(ctx context.Context, viewerID string, likes domain.LikeSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := likesDoc{
		Likes:     likes,
		UpdatedAt: domain.NowMillis(),
	}
	if doc.Likes == nil {
		doc.Likes = domain.LikeSet{}
	}
	if err := s.set([]byte(likesPrefix+viewerID), doc); err != nil {
		return fmt.Errorf("set likes: %w", err)
	}
	return nil
}

// HasLikes reports whether the viewer has a ledger document at all.
func (s *Store) HasLikes(ctx context.Context, viewerID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := s.exists([]byte(likesPrefix + viewerID))
	if err != nil {
		return false, fmt.Errorf("check likes: %w", err)
	}
	return ok, nil
}
