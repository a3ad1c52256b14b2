package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmatch/inkmatch-server/internal/search"
)

// seedSearchDocs indexes documents directly so tests don't depend on
// the async store-to-index pipeline.
func seedSearchDocs(t *testing.T, ts *testServer) {
	t.Helper()

	docs := []*search.Document{
		{
			ID:          "tat-rose",
			ArtistID:    "art-iris",
			ArtistName:  "Iris Nakamura",
			Description: "delicate fine-line rose on the forearm",
			Style:       "fine-line",
			BodyPart:    "forearm",
			Price:       300,
		},
		{
			ID:          "tat-swallow",
			ArtistID:    "art-iris",
			ArtistName:  "Iris Nakamura",
			Description: "traditional swallow across the chest",
			Style:       "traditional",
			BodyPart:    "chest",
			Price:       550,
		},
		{
			ID:          "tat-geometric",
			ArtistID:    "art-marco",
			ArtistName:  "Marco Reyes",
			Description: "bold geometric blackwork sleeve",
			Style:       "blackwork",
			BodyPart:    "upper-arm",
			Price:       900,
		},
	}
	require.NoError(t, ts.Server.search.IndexDocuments(docs))
}

func TestSearchTattoos_ByDescription(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	seedSearchDocs(t, ts)

	resp := ts.api.Get("/api/v1/search?q=rose")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	require.NotEmpty(t, envelope.Data.Hits)
	assert.Equal(t, "tat-rose", envelope.Data.Hits[0].ID)
}

func TestSearchTattoos_FilterByStyle(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	seedSearchDocs(t, ts)

	resp := ts.api.Get("/api/v1/search?style=blackwork")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Hits, 1)
	assert.Equal(t, "tat-geometric", envelope.Data.Hits[0].ID)
}

func TestSearchTattoos_FilterByArtistAndPrice(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	seedSearchDocs(t, ts)

	resp := ts.api.Get("/api/v1/search?artist_id=art-iris&min_price=500&max_price=600")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Hits, 1)
	assert.Equal(t, "tat-swallow", envelope.Data.Hits[0].ID)
}

func TestSearchTattoos_SortByPriceAscending(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	seedSearchDocs(t, ts)

	resp := ts.api.Get("/api/v1/search?sort=price&order=asc")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Hits, 3)
	assert.Equal(t, "tat-rose", envelope.Data.Hits[0].ID)
	assert.Equal(t, "tat-geometric", envelope.Data.Hits[2].ID)
}

func TestSearchTattoos_NoMatches_ReturnsEmptyHits(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	seedSearchDocs(t, ts)

	resp := ts.api.Get("/api/v1/search?q=dragon")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[search.Result](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Empty(t, envelope.Data.Hits)
}
