package store_test

import (
	"context"
	"testing"

	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestLikes_GetLikes_EmptyForUnknownViewer(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	likes, err := s.GetLikes(context.Background(), "viewer-unknown")
	require.NoError(t, err)
	require.NotNil(t, likes)
	require.Empty(t, likes)
}

func TestLikes_SetAndGet_RoundTrip(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	in := domain.LikeSet{
		{TattooID: "tat-1", Timestamp: 1000},
		{TattooID: "tat-2", Timestamp: 2000},
	}
	require.NoError(t, s.SetLikes(ctx, "viewer-1", in))

	out, err := s.GetLikes(ctx, "viewer-1")
	require.NoError(t, err)
	require.Equal(t, in, out)

	// Ledgers are per viewer.
	other, err := s.GetLikes(ctx, "viewer-2")
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestLikes_SetLikes_EmptySetIsValid(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, s.SetLikes(ctx, "viewer-1", domain.LikeSet{{TattooID: "tat-1", Timestamp: 1}}))
	require.NoError(t, s.SetLikes(ctx, "viewer-1", domain.LikeSet{}))

	out, err := s.GetLikes(ctx, "viewer-1")
	require.NoError(t, err)
	require.Empty(t, out)

	// The ledger document still exists even when empty.
	has, err := s.HasLikes(ctx, "viewer-1")
	require.NoError(t, err)
	require.True(t, has)
}

// TestLikes_ConcurrentToggle_LastWriterWins pins down the ledger's
// documented consistency contract: two toggles that read the same snapshot
// resolve last-writer-wins on the whole set, and the first writer's
// addition is lost. This behavior is intended, not a bug — nothing above
// SetLikes serializes read-modify-write cycles.
func TestLikes_ConcurrentToggle_LastWriterWins(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	viewer := "viewer-racy"

	// Two tabs read the same (empty) snapshot.
	snapshotA, err := s.GetLikes(ctx, viewer)
	require.NoError(t, err)
	snapshotB, err := s.GetLikes(ctx, viewer)
	require.NoError(t, err)

	// Tab A likes tat-1 and writes.
	require.NoError(t, s.SetLikes(ctx, viewer, snapshotA.With("tat-1")))

	// Tab B likes tat-2 from its stale snapshot and writes.
	require.NoError(t, s.SetLikes(ctx, viewer, snapshotB.With("tat-2")))

	final, err := s.GetLikes(ctx, viewer)
	require.NoError(t, err)

	// The second write won wholesale: tat-1 is gone.
	require.True(t, final.Has("tat-2"))
	require.False(t, final.Has("tat-1"))
	require.Len(t, final, 1)
}
