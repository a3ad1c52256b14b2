package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmatch/inkmatch-server/internal/errors"
	"github.com/inkmatch/inkmatch-server/internal/store"
)

func setupTestTattooService(t *testing.T) (*TattooService, *store.Store, func()) {
	t.Helper()
	s, cleanup := setupTestStore(t)
	guard := NewOwnershipGuard(s)
	svc := NewTattooService(s, guard, newTestValidator(), testLogger())
	return svc, s, cleanup
}

func validUpload() TattooUpload {
	return TattooUpload{
		ImageURL: "https://cdn.example.com/tattoos/rose.jpg",
		Price:    420,
		Style:    "traditional",
		Tags:     []string{"rose", "color"},
		Size:     "medium",
	}
}

func TestTattooService_Upload(t *testing.T) {
	svc, s, cleanup := setupTestTattooService(t)
	defer cleanup()

	ctx := context.Background()
	artist := createTestArtist(t, s, "Iris", "user-1")

	tattoo, err := svc.Upload(ctx, "user-1", validUpload())
	require.NoError(t, err)

	assert.NotEmpty(t, tattoo.ID)
	assert.Equal(t, artist.ID, tattoo.ArtistID)
	assert.Equal(t, float64(420), tattoo.Price)
	assert.Positive(t, tattoo.CreatedAt)
}

func TestTattooService_UploadWithoutProfile(t *testing.T) {
	svc, _, cleanup := setupTestTattooService(t)
	defer cleanup()

	_, err := svc.Upload(context.Background(), "user-without-profile", validUpload())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPermissionDenied))
}

func TestTattooService_UploadRejectsNonPositivePrice(t *testing.T) {
	svc, s, cleanup := setupTestTattooService(t)
	defer cleanup()

	ctx := context.Background()
	artist := createTestArtist(t, s, "Iris", "user-1")

	for _, price := range []float64{0, -50} {
		upload := validUpload()
		upload.Price = price

		_, err := svc.Upload(ctx, "user-1", upload)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrValidation))
	}

	// Rejected uploads must leave no partial writes.
	tattoos, err := s.GetTattoosByArtist(ctx, artist.ID)
	require.NoError(t, err)
	assert.Empty(t, tattoos)
}

func TestTattooService_UpdateByOwner(t *testing.T) {
	svc, s, cleanup := setupTestTattooService(t)
	defer cleanup()

	ctx := context.Background()
	createTestArtist(t, s, "Iris", "user-1")

	tattoo, err := svc.Upload(ctx, "user-1", validUpload())
	require.NoError(t, err)

	upload := validUpload()
	upload.Price = 600
	upload.Description = "reworked linework"

	updated, err := svc.Update(ctx, "user-1", tattoo.ID, upload)
	require.NoError(t, err)
	assert.Equal(t, tattoo.ID, updated.ID)
	assert.Equal(t, tattoo.ArtistID, updated.ArtistID)
	assert.Equal(t, float64(600), updated.Price)
	assert.Equal(t, tattoo.CreatedAt, updated.CreatedAt)
}

func TestTattooService_UpdateByNonOwner(t *testing.T) {
	svc, s, cleanup := setupTestTattooService(t)
	defer cleanup()

	ctx := context.Background()
	createTestArtist(t, s, "Iris", "user-1")
	createTestArtist(t, s, "Marco", "user-2")

	tattoo, err := svc.Upload(ctx, "user-1", validUpload())
	require.NoError(t, err)

	_, err = svc.Update(ctx, "user-2", tattoo.ID, validUpload())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPermissionDenied))
}

func TestTattooService_MutateMissingTattoo(t *testing.T) {
	svc, s, cleanup := setupTestTattooService(t)
	defer cleanup()

	ctx := context.Background()
	createTestArtist(t, s, "Iris", "user-1")

	_, err := svc.Update(ctx, "user-1", "tat-missing", validUpload())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound), "missing tattoo is NOT_FOUND, not PERMISSION_DENIED")

	err = svc.Delete(ctx, "user-1", "tat-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestTattooService_Delete(t *testing.T) {
	svc, s, cleanup := setupTestTattooService(t)
	defer cleanup()

	ctx := context.Background()
	artist := createTestArtist(t, s, "Iris", "user-1")

	tattoo, err := svc.Upload(ctx, "user-1", validUpload())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", tattoo.ID))

	_, err = svc.Get(ctx, tattoo.ID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	tattoos, err := svc.ListByArtist(ctx, artist.ID)
	require.NoError(t, err)
	assert.Empty(t, tattoos)
}

func TestTattooService_ListByUnknownArtist(t *testing.T) {
	svc, _, cleanup := setupTestTattooService(t)
	defer cleanup()

	_, err := svc.ListByArtist(context.Background(), "art-unknown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestOwnershipGuard_DistinguishesFailures(t *testing.T) {
	_, s, cleanup := setupTestTattooService(t)
	defer cleanup()

	ctx := context.Background()
	guard := NewOwnershipGuard(s)

	owner := createTestArtist(t, s, "Iris", "user-1")
	tattoo := createTestTattoo(t, s, owner.ID)

	// Missing tattoo: NOT_FOUND.
	_, err := guard.RequireOwner(ctx, "user-1", "tat-missing")
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	// Existing tattoo, caller has no profile: PERMISSION_DENIED.
	_, err = guard.RequireOwner(ctx, "user-no-profile", tattoo.ID)
	assert.True(t, errors.Is(err, errors.ErrPermissionDenied))

	// Existing tattoo, caller owns a different profile: PERMISSION_DENIED.
	createTestArtist(t, s, "Marco", "user-2")
	_, err = guard.RequireOwner(ctx, "user-2", tattoo.ID)
	assert.True(t, errors.Is(err, errors.ErrPermissionDenied))

	// The owner passes and gets the tattoo back.
	got, err := guard.RequireOwner(ctx, "user-1", tattoo.ID)
	require.NoError(t, err)
	assert.Equal(t, tattoo.ID, got.ID)
}
