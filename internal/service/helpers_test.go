package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/inkmatch/inkmatch-server/internal/id"
	"github.com/inkmatch/inkmatch-server/internal/store"
	"github.com/inkmatch/inkmatch-server/internal/validation"
)

func setupTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "service-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	testStore, err := store.New(dbPath, nil)
	require.NoError(t, err)

	cleanup := func() {
		testStore.Close()
		os.RemoveAll(tmpDir)
	}
	return testStore, cleanup
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestArtist(t *testing.T, s *store.Store, name, userID string) *domain.Artist {
	t.Helper()
	artist := &domain.Artist{
		ID:     id.MustGenerate(id.PrefixArtist),
		Name:   name,
		UserID: userID,
	}
	artist.InitTimestamps()
	require.NoError(t, s.CreateArtist(context.Background(), artist))
	return artist
}

func createTestTattoo(t *testing.T, s *store.Store, artistID string) *domain.Tattoo {
	t.Helper()
	tattoo := &domain.Tattoo{
		ID:       id.MustGenerate(id.PrefixTattoo),
		ArtistID: artistID,
		ImageURL: "https://cdn.example.com/tattoos/" + artistID + ".jpg",
		Price:    250,
	}
	tattoo.InitTimestamps()
	require.NoError(t, s.CreateTattoo(context.Background(), tattoo))
	return tattoo
}

func newTestValidator() *validation.Validator {
	return validation.New()
}
