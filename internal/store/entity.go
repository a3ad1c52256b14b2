package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Entity provides generic CRUD operations for one document collection.
type Entity[T any] struct {
	store       *Store
	prefix      string
	uniqueIdxs  []uniqueIndex[T]
	groupedIdxs []groupedIndex[T]
}

// uniqueIndex maps an index value to exactly one document ID.
type uniqueIndex[T any] struct {
	name   string
	keyGen func(*T) []string
}

// groupedIndex maps an index value to many document IDs (e.g., all
// tattoos belonging to one artist).
type groupedIndex[T any] struct {
	name   string
	keyGen func(*T) []string
	idOf   func(*T) string
}

// NewEntity creates a new Entity instance for type T.
func NewEntity[T any](s *Store, prefix string) *Entity[T] {
	return &Entity[T]{store: s, prefix: prefix}
}

// WithUniqueIndex adds a secondary index where each value resolves to at
// most one document. Create and Update fail with ErrAlreadyExists on
// conflicting values.
func (e *Entity[T]) WithUniqueIndex(name string, keyGen func(*T) []string) *Entity[T] {
	e.uniqueIdxs = append(e.uniqueIdxs, uniqueIndex[T]{name: name, keyGen: keyGen})
	return e
}

// WithGroupedIndex adds a secondary index where each value resolves to
// any number of documents. idOf must return the document's primary ID.
func (e *Entity[T]) WithGroupedIndex(name string, keyGen func(*T) []string, idOf func(*T) string) *Entity[T] {
	e.groupedIdxs = append(e.groupedIdxs, groupedIndex[T]{name: name, keyGen: keyGen, idOf: idOf})
	return e
}

func (e *Entity[T]) uniqueIdxKey(name, value string) []byte {
	return []byte(e.prefix + "idx:" + name + ":" + value)
}

func (e *Entity[T]) groupedIdxKey(name, value, id string) []byte {
	return []byte(e.prefix + "gdx:" + name + ":" + value + ":" + id)
}

// Create creates a new document with the given ID.
// Returns ErrAlreadyExists if the ID or a unique index value is taken.
func (e *Entity[T]) Create(ctx context.Context, id string, entity *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(e.prefix + id)
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check existing key: %w", err)
		}

		for _, idx := range e.uniqueIdxs {
			for _, v := range idx.keyGen(entity) {
				idxKey := e.uniqueIdxKey(idx.name, v)
				if _, err := txn.Get(idxKey); err == nil {
					return fmt.Errorf("index %s conflict on %s: %w", idx.name, v, ErrAlreadyExists)
				} else if !errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("check index key: %w", err)
				}
			}
		}

		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set key: %w", err)
		}
		return e.writeIndexKeys(txn, id, entity)
	})
}

// Get retrieves a document by ID.
// Returns ErrNotFound if the document does not exist.
func (e *Entity[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := []byte(e.prefix + id)
	var entity T

	err := e.store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get key: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entity)
		})
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetByUniqueIndex retrieves a document through a unique secondary index.
func (e *Entity[T]) GetByUniqueIndex(ctx context.Context, indexName, value string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var id string
	err := e.store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(e.uniqueIdxKey(indexName, value))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return e.Get(ctx, id)
}

// ListByGroupedIndex returns all documents whose grouped index matches value.
// Order follows the index key order (ascending document ID).
func (e *Entity[T]) ListByGroupedIndex(ctx context.Context, indexName, value string) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scanPrefix := []byte(e.prefix + "gdx:" + indexName + ":" + value + ":")
	var ids []string

	err := e.store.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = scanPrefix
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(scanPrefix); it.ValidForPrefix(scanPrefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				ids = append(ids, string(val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*T, 0, len(ids))
	for _, docID := range ids {
		doc, err := e.Get(ctx, docID)
		if errors.Is(err, ErrNotFound) {
			// Index entry outlived its document; skip rather than fail the listing.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// Update replaces an existing document.
// Returns ErrNotFound if the document does not exist.
func (e *Entity[T]) Update(ctx context.Context, id string, entity *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(e.prefix + id)
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		var old T
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get existing key: %w", err)
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &old)
		}); err != nil {
			return err
		}

		if err := e.deleteIndexKeys(txn, id, &old); err != nil {
			return err
		}

		// Check unique conflicts, ignoring values the old document held.
		for _, idx := range e.uniqueIdxs {
			oldVals := make(map[string]bool)
			for _, v := range idx.keyGen(&old) {
				oldVals[v] = true
			}
			for _, v := range idx.keyGen(entity) {
				if oldVals[v] {
					continue
				}
				idxKey := e.uniqueIdxKey(idx.name, v)
				if _, err := txn.Get(idxKey); err == nil {
					return fmt.Errorf("index %s conflict on %s: %w", idx.name, v, ErrAlreadyExists)
				} else if !errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("check index key: %w", err)
				}
			}
		}

		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set key: %w", err)
		}
		return e.writeIndexKeys(txn, id, entity)
	})
}

// Delete removes a document by ID.
// Idempotent: deleting a missing document is not an error.
func (e *Entity[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(e.prefix + id)

	return e.store.db.Update(func(txn *badger.Txn) error {
		var entity T
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get key: %w", err)
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entity)
		}); err != nil {
			return err
		}

		if err := e.deleteIndexKeys(txn, id, &entity); err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete key: %w", err)
		}
		return nil
	})
}

// List returns an iterator over all documents in the collection.
func (e *Entity[T]) List(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		_ = e.store.db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(e.prefix)
			opts.PrefetchValues = true

			it := txn.NewIterator(opts)
			defer it.Close()

			for it.Seek([]byte(e.prefix)); it.ValidForPrefix([]byte(e.prefix)); it.Next() {
				if ctx.Err() != nil {
					yield(nil, ctx.Err())
					return ctx.Err()
				}

				// Skip index keys.
				remainder := strings.TrimPrefix(string(it.Item().Key()), e.prefix)
				if strings.HasPrefix(remainder, "idx:") || strings.HasPrefix(remainder, "gdx:") {
					continue
				}

				var entity T
				err := it.Item().Value(func(val []byte) error {
					return json.Unmarshal(val, &entity)
				})
				if err != nil {
					yield(nil, err)
					return err
				}
				if !yield(&entity, nil) {
					return nil
				}
			}
			return nil
		})
	}
}

func (e *Entity[T]) writeIndexKeys(txn *badger.Txn, id string, entity *T) error {
	for _, idx := range e.uniqueIdxs {
		for _, v := range idx.keyGen(entity) {
			if err := txn.Set(e.uniqueIdxKey(idx.name, v), []byte(id)); err != nil {
				return fmt.Errorf("set index key: %w", err)
			}
		}
	}
	for _, idx := range e.groupedIdxs {
		for _, v := range idx.keyGen(entity) {
			if err := txn.Set(e.groupedIdxKey(idx.name, v, idx.idOf(entity)), []byte(id)); err != nil {
				return fmt.Errorf("set index key: %w", err)
			}
		}
	}
	return nil
}

func (e *Entity[T]) deleteIndexKeys(txn *badger.Txn, id string, entity *T) error {
	for _, idx := range e.uniqueIdxs {
		for _, v := range idx.keyGen(entity) {
			if err := txn.Delete(e.uniqueIdxKey(idx.name, v)); err != nil {
				return fmt.Errorf("delete index key: %w", err)
			}
		}
	}
	for _, idx := range e.groupedIdxs {
		for _, v := range idx.keyGen(entity) {
			if err := txn.Delete(e.groupedIdxKey(idx.name, v, idx.idOf(entity))); err != nil {
				return fmt.Errorf("delete index key: %w", err)
			}
		}
	}
	return nil
}
