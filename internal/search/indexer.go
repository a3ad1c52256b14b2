package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/inkmatch/inkmatch-server/internal/store"
)

// Indexer keeps the Bleve index in sync with the catalog. It implements
// store.SearchIndexer so the store can publish tattoo changes without
// importing this package.
type Indexer struct {
	index  *Index
	store  *store.Store
	logger *slog.Logger
}

// NewIndexer creates an indexer bound to a store and an index. Call
// store.SetSearchIndexer with the result to activate incremental
// indexing.
func NewIndexer(index *Index, s *store.Store, logger *slog.Logger) *Indexer {
	return &Indexer{
		index:  index,
		store:  s,
		logger: logger.With(slog.String("component", "search-indexer")),
	}
}

// IndexTattoo indexes one tattoo, resolving its artist name. A missing
// artist is tolerated; the document is indexed without a name.
func (ix *Indexer) IndexTattoo(ctx context.Context, t *domain.Tattoo) error {
	var artistName string
	if artist, err := ix.store.GetArtist(ctx, t.ArtistID); err == nil {
		artistName = artist.Name
	}
	return ix.index.IndexDocument(TattooToDocument(t, artistName))
}

// DeleteTattoo removes a tattoo from the index.
func (ix *Indexer) DeleteTattoo(_ context.Context, tattooID string) error {
	return ix.index.DeleteDocument(tattooID)
}

// Reindex rebuilds the index from the catalog. Run on startup so the
// index catches up with writes it missed while the server was down.
func (ix *Indexer) Reindex(ctx context.Context) error {
	if err := ix.index.Rebuild(); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	tattoos, err := ix.store.ListTattoos(ctx)
	if err != nil {
		return fmt.Errorf("list tattoos: %w", err)
	}

	artists, err := ix.store.ListArtists(ctx)
	if err != nil {
		return fmt.Errorf("list artists: %w", err)
	}
	names := make(map[string]string, len(artists))
	for _, a := range artists {
		names[a.ID] = a.Name
	}

	docs := make([]*Document, 0, len(tattoos))
	for _, t := range tattoos {
		docs = append(docs, TattooToDocument(t, names[t.ArtistID]))
	}

	if err := ix.index.IndexDocuments(docs); err != nil {
		return fmt.Errorf("index tattoos: %w", err)
	}

	ix.logger.InfoContext(ctx, "reindexed tattoo catalog", slog.Int("documents", len(docs)))
	return nil
}
