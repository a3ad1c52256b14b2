package search

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a search query.
type Params struct {
	Query string // User's search query

	// Filters
	ArtistID string   // Restrict to one artist's portfolio
	Styles   []string // Filter by exact style
	Tags     []string // Filter by exact tags
	BodyPart string   // Filter by body part
	MinPrice float64
	MaxPrice float64

	// Pagination
	Limit  int
	Offset int

	// Sorting
	SortBy    string // "relevance", "price", "recent"
	SortOrder string // "asc", "desc"

	// Options
	IncludeFacets bool
	Highlight     bool
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{
		Limit:         20,
		Offset:        0,
		SortBy:        "relevance",
		SortOrder:     "desc",
		IncludeFacets: true,
		Highlight:     true,
	}
}

// facetFields are the fields facet counts are computed over.
var facetFields = []string{"style", "tags", "body_part"}

// Result represents the search results.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
	Facets Facets `json:"facets,omitempty"`
}

// Hit represents a single search result.
type Hit struct {
	ID          string            `json:"id"`
	Score       float64           `json:"score"`
	ArtistID    string            `json:"artist_id"`
	ArtistName  string            `json:"artist_name,omitempty"`
	Description string            `json:"description,omitempty"`
	Style       string            `json:"style,omitempty"`
	BodyPart    string            `json:"body_part,omitempty"`
	Price       float64           `json:"price,omitempty"`
	Highlights  map[string]string `json:"highlights,omitempty"`
}

// Facets contains facet counts.
type Facets struct {
	Styles    []FacetCount `json:"styles,omitempty"`
	Tags      []FacetCount `json:"tags,omitempty"`
	BodyParts []FacetCount `json:"body_parts,omitempty"`
}

// FacetCount represents a facet value and its count.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Search executes a search query.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	searchQuery := buildSearchQuery(params)

	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)

	addSorting(searchRequest, params)

	if params.IncludeFacets {
		for _, field := range facetFields {
			searchRequest.AddFacet(field, bleve.NewFacetRequest(field, 20))
		}
	}

	if params.Highlight {
		searchRequest.Highlight = bleve.NewHighlight()
		searchRequest.Highlight.AddField("description")
		searchRequest.Highlight.AddField("artist_name")
	}

	searchRequest.Fields = []string{
		"id", "artist_id", "artist_name", "description",
		"style", "body_part", "price",
	}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		h := Hit{
			ID:    hit.ID,
			Score: hit.Score,
		}

		if v, ok := hit.Fields["artist_id"].(string); ok {
			h.ArtistID = v
		}
		if v, ok := hit.Fields["artist_name"].(string); ok {
			h.ArtistName = v
		}
		if v, ok := hit.Fields["description"].(string); ok {
			h.Description = v
		}
		if v, ok := hit.Fields["style"].(string); ok {
			h.Style = v
		}
		if v, ok := hit.Fields["body_part"].(string); ok {
			h.BodyPart = v
		}
		if v, ok := hit.Fields["price"].(float64); ok {
			h.Price = v
		}

		if len(hit.Fragments) > 0 {
			h.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					h.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, h)
	}

	if params.IncludeFacets {
		result.Facets = extractFacets(searchResult)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
func buildSearchQuery(params Params) query.Query {
	var queries []query.Query

	// Main text query across description, artist name, and style.
	if params.Query != "" {
		textQueries := []query.Query{}

		descMatch := bleve.NewMatchQuery(params.Query)
		descMatch.SetField("description")
		descMatch.SetBoost(2.0)
		textQueries = append(textQueries, descMatch)

		artistMatch := bleve.NewMatchQuery(params.Query)
		artistMatch.SetField("artist_name")
		artistMatch.SetBoost(3.0)
		textQueries = append(textQueries, artistMatch)

		// Style is a keyword field; searching "traditional" should hit it.
		styleTerm := bleve.NewTermQuery(strings.ToLower(params.Query))
		styleTerm.SetField("style")
		styleTerm.SetBoost(2.5)
		textQueries = append(textQueries, styleTerm)

		tagTerm := bleve.NewTermQuery(strings.ToLower(params.Query))
		tagTerm.SetField("tags")
		tagTerm.SetBoost(2.0)
		textQueries = append(textQueries, tagTerm)

		// Fuzzy matching for typo tolerance on the description.
		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("description")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		// Prefix query for autocomplete (minimum 2 chars).
		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("artist_name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	// Artist filter
	if params.ArtistID != "" {
		aq := bleve.NewTermQuery(params.ArtistID)
		aq.SetField("artist_id")
		queries = append(queries, aq)
	}

	// Style filter (exact match, OR across styles)
	if len(params.Styles) > 0 {
		styleQueries := make([]query.Query, len(params.Styles))
		for i, style := range params.Styles {
			sq := bleve.NewTermQuery(style)
			sq.SetField("style")
			styleQueries[i] = sq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(styleQueries...))
	}

	// Tag filter (every requested tag must be present)
	for _, tag := range params.Tags {
		tq := bleve.NewTermQuery(tag)
		tq.SetField("tags")
		queries = append(queries, tq)
	}

	// Body part filter
	if params.BodyPart != "" {
		bq := bleve.NewTermQuery(params.BodyPart)
		bq.SetField("body_part")
		queries = append(queries, bq)
	}

	// Price range filter
	if params.MinPrice > 0 || params.MaxPrice > 0 {
		minPrice := params.MinPrice
		maxPrice := params.MaxPrice
		if maxPrice == 0 {
			maxPrice = math.MaxFloat64
		}
		rangeQuery := bleve.NewNumericRangeQuery(&minPrice, &maxPrice)
		rangeQuery.SetField("price")
		queries = append(queries, rangeQuery)
	}

	// Combine all queries with AND
	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}

// addSorting configures sort order.
func addSorting(req *bleve.SearchRequest, params Params) {
	switch params.SortBy {
	case "price":
		if params.SortOrder == "desc" {
			req.SortBy([]string{"-price"})
		} else {
			req.SortBy([]string{"price"})
		}
	case "recent":
		if params.SortOrder == "asc" {
			req.SortBy([]string{"created_at"})
		} else {
			req.SortBy([]string{"-created_at"})
		}
	default:
		// Relevance (score) is default - Bleve handles this
		req.SortBy([]string{"-_score"})
	}
}

// extractFacets converts Bleve facets to our format.
func extractFacets(result *bleve.SearchResult) Facets {
	facets := Facets{}

	if styleFacet, ok := result.Facets["style"]; ok {
		for _, term := range styleFacet.Terms.Terms() {
			facets.Styles = append(facets.Styles, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}

	if tagFacet, ok := result.Facets["tags"]; ok {
		for _, term := range tagFacet.Terms.Terms() {
			facets.Tags = append(facets.Tags, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}

	if bodyPartFacet, ok := result.Facets["body_part"]; ok {
		for _, term := range bodyPartFacet.Terms.Terms() {
			facets.BodyParts = append(facets.BodyParts, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}

	return facets
}
