package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkmatch/inkmatch-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchTattoos",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search tattoos",
		Description: "Full-text search over the tattoo catalog with filters and facets",
		Tags:        []string{"Search"},
	}, s.handleSearchTattoos)
}

// === DTOs ===

// SearchInput contains search query parameters.
type SearchInput struct {
	Query    string   `query:"q" doc:"Search query text"`
	ArtistID string   `query:"artist_id" doc:"Restrict to one artist's portfolio"`
	Styles   []string `query:"style" doc:"Filter by exact style"`
	Tags     []string `query:"tag" doc:"Filter by exact tag; multiple tags must all match"`
	BodyPart string   `query:"body_part" doc:"Filter by body part"`
	MinPrice float64  `query:"min_price" doc:"Minimum price" minimum:"0"`
	MaxPrice float64  `query:"max_price" doc:"Maximum price" minimum:"0"`
	Limit    int      `query:"limit" doc:"Maximum number of hits" minimum:"0" maximum:"100"`
	Offset   int      `query:"offset" doc:"Number of hits to skip" minimum:"0"`
	SortBy   string   `query:"sort" doc:"Sort order" enum:"relevance,price,recent"`
	Order    string   `query:"order" doc:"Sort direction" enum:"asc,desc"`
}

// SearchOutput wraps the search result for Huma.
type SearchOutput struct {
	Body search.Result
}

// === Handlers ===

func (s *Server) handleSearchTattoos(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	params := search.DefaultParams()
	params.Query = input.Query
	params.ArtistID = input.ArtistID
	params.Styles = input.Styles
	params.Tags = input.Tags
	params.BodyPart = input.BodyPart
	params.MinPrice = input.MinPrice
	params.MaxPrice = input.MaxPrice
	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	params.Offset = input.Offset
	if input.SortBy != "" {
		params.SortBy = input.SortBy
	}
	if input.Order != "" {
		params.SortOrder = input.Order
	}

	result, err := s.search.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	return &SearchOutput{Body: *result}, nil
}
