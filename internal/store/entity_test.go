package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkmatch/inkmatch-server/internal/store"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID    string `json:"id"`
	Owner string `json:"owner"`
	Slug  string `json:"slug"`
}

func setupTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "store-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := store.New(dbPath, nil)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return s, cleanup
}

func TestEntity_Create_Success(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[testDoc](s, "test:")

	doc := &testDoc{ID: "1", Owner: "user-1", Slug: "first"}
	err := entity.Create(context.Background(), "1", doc)
	require.NoError(t, err)

	retrieved, err := entity.Get(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, doc.ID, retrieved.ID)
	require.Equal(t, doc.Owner, retrieved.Owner)
}

func TestEntity_Create_AlreadyExists(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[testDoc](s, "test:")

	doc := &testDoc{ID: "1", Owner: "user-1"}
	require.NoError(t, entity.Create(context.Background(), "1", doc))

	err := entity.Create(context.Background(), "1", doc)
	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestEntity_Get_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[testDoc](s, "test:")

	retrieved, err := entity.Get(context.Background(), "nonexistent")
	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Nil(t, retrieved)
}

func TestEntity_UniqueIndex_Conflict(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[testDoc](s, "test:").
		WithUniqueIndex("slug", func(d *testDoc) []string {
			return []string{d.Slug}
		})

	require.NoError(t, entity.Create(context.Background(), "1", &testDoc{ID: "1", Slug: "taken"}))

	err := entity.Create(context.Background(), "2", &testDoc{ID: "2", Slug: "taken"})
	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestEntity_UniqueIndex_Lookup(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[testDoc](s, "test:").
		WithUniqueIndex("slug", func(d *testDoc) []string {
			return []string{d.Slug}
		})

	require.NoError(t, entity.Create(context.Background(), "1", &testDoc{ID: "1", Slug: "findme"}))

	retrieved, err := entity.GetByUniqueIndex(context.Background(), "slug", "findme")
	require.NoError(t, err)
	require.Equal(t, "1", retrieved.ID)

	_, err = entity.GetByUniqueIndex(context.Background(), "slug", "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntity_UniqueIndex_UpdateMovesIndex(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[testDoc](s, "test:").
		WithUniqueIndex("slug", func(d *testDoc) []string {
			return []string{d.Slug}
		})

	require.NoError(t, entity.Create(context.Background(), "1", &testDoc{ID: "1", Slug: "old"}))
	require.NoError(t, entity.Update(context.Background(), "1", &testDoc{ID: "1", Slug: "new"}))

	_, err := entity.GetByUniqueIndex(context.Background(), "slug", "old")
	require.ErrorIs(t, err, store.ErrNotFound)

	retrieved, err := entity.GetByUniqueIndex(context.Background(), "slug", "new")
	require.NoError(t, err)
	require.Equal(t, "1", retrieved.ID)

	// The freed value is usable again.
	require.NoError(t, entity.Create(context.Background(), "2", &testDoc{ID: "2", Slug: "old"}))
}

func TestEntity_GroupedIndex_List(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[testDoc](s, "test:").
		WithGroupedIndex("owner",
			func(d *testDoc) []string { return []string{d.Owner} },
			func(d *testDoc) string { return d.ID },
		)

	ctx := context.Background()
	require.NoError(t, entity.Create(ctx, "1", &testDoc{ID: "1", Owner: "alice"}))
	require.NoError(t, entity.Create(ctx, "2", &testDoc{ID: "2", Owner: "alice"}))
	require.NoError(t, entity.Create(ctx, "3", &testDoc{ID: "3", Owner: "bob"}))

	docs, err := entity.ListByGroupedIndex(ctx, "owner", "alice")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	docs, err = entity.ListByGroupedIndex(ctx, "owner", "bob")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "3", docs[0].ID)

	docs, err = entity.ListByGroupedIndex(ctx, "owner", "nobody")
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestEntity_Delete_Idempotent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[testDoc](s, "test:").
		WithGroupedIndex("owner",
			func(d *testDoc) []string { return []string{d.Owner} },
			func(d *testDoc) string { return d.ID },
		)

	ctx := context.Background()
	require.NoError(t, entity.Create(ctx, "1", &testDoc{ID: "1", Owner: "alice"}))
	require.NoError(t, entity.Delete(ctx, "1"))

	_, err := entity.Get(ctx, "1")
	require.ErrorIs(t, err, store.ErrNotFound)

	docs, err := entity.ListByGroupedIndex(ctx, "owner", "alice")
	require.NoError(t, err)
	require.Empty(t, docs)

	// Deleting again is not an error.
	require.NoError(t, entity.Delete(ctx, "1"))
}

func TestEntity_List_SkipsIndexKeys(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[testDoc](s, "test:").
		WithUniqueIndex("slug", func(d *testDoc) []string { return []string{d.Slug} }).
		WithGroupedIndex("owner",
			func(d *testDoc) []string { return []string{d.Owner} },
			func(d *testDoc) string { return d.ID },
		)

	ctx := context.Background()
	require.NoError(t, entity.Create(ctx, "1", &testDoc{ID: "1", Owner: "alice", Slug: "a"}))
	require.NoError(t, entity.Create(ctx, "2", &testDoc{ID: "2", Owner: "bob", Slug: "b"}))

	var count int
	for doc, err := range entity.List(ctx) {
		require.NoError(t, err)
		require.NotNil(t, doc)
		count++
	}
	require.Equal(t, 2, count)
}
