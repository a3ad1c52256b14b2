package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmatch/inkmatch-server/internal/errors"
)

func setupTestArtistService(t *testing.T) (*ArtistService, func()) {
	t.Helper()
	s, cleanup := setupTestStore(t)
	return NewArtistService(s, newTestValidator(), testLogger()), cleanup
}

func TestArtistService_UpsertCreatesProfile(t *testing.T) {
	svc, cleanup := setupTestArtistService(t)
	defer cleanup()

	artist, err := svc.Upsert(context.Background(), "user-1", ArtistProfile{
		Name:     "Iris Nakamura",
		Location: "Berlin",
		Email:    "iris@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, artist.ID)
	assert.Equal(t, "user-1", artist.UserID)
	assert.Equal(t, "Iris Nakamura", artist.Name)
	assert.Positive(t, artist.CreatedAt)
	assert.Equal(t, artist.CreatedAt, artist.UpdatedAt)
}

func TestArtistService_UpsertUpdatesInPlace(t *testing.T) {
	svc, cleanup := setupTestArtistService(t)
	defer cleanup()

	ctx := context.Background()

	created, err := svc.Upsert(ctx, "user-1", ArtistProfile{Name: "Iris"})
	require.NoError(t, err)

	updated, err := svc.Upsert(ctx, "user-1", ArtistProfile{Name: "Iris Nakamura", Bio: "Fine line"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "upsert must not mint a new ID")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Iris Nakamura", updated.Name)
	assert.Equal(t, "Fine line", updated.Bio)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "one profile per user")
}

func TestArtistService_UpsertRejectsInvalidProfile(t *testing.T) {
	svc, cleanup := setupTestArtistService(t)
	defer cleanup()

	_, err := svc.Upsert(context.Background(), "user-1", ArtistProfile{
		Name:    "",
		Website: "not a url",
	})
	require.Error(t, err)

	var domErr *errors.Error
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, errors.CodeValidation, domErr.Code)

	// Nothing was written.
	_, err = svc.GetByUserID(context.Background(), "user-1")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestArtistService_GetUnknownArtist(t *testing.T) {
	svc, cleanup := setupTestArtistService(t)
	defer cleanup()

	_, err := svc.Get(context.Background(), "art-does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
