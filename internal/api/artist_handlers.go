package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/inkmatch/inkmatch-server/internal/service"
)

func (s *Server) registerArtistRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listArtists",
		Method:      http.MethodGet,
		Path:        "/api/v1/artists",
		Summary:     "List artists",
		Description: "Returns all artist profiles",
		Tags:        []string{"Artists"},
	}, s.handleListArtists)

	huma.Register(s.api, huma.Operation{
		OperationID: "getMyArtistProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/artists/me",
		Summary:     "Get own artist profile",
		Description: "Returns the authenticated user's artist profile",
		Tags:        []string{"Artists"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetMyArtistProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "upsertArtistProfile",
		Method:      http.MethodPut,
		Path:        "/api/v1/artists/me",
		Summary:     "Create or update own artist profile",
		Description: "Creates the authenticated user's artist profile or updates it in place",
		Tags:        []string{"Artists"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpsertArtistProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "getArtist",
		Method:      http.MethodGet,
		Path:        "/api/v1/artists/{id}",
		Summary:     "Get artist",
		Description: "Returns an artist profile by ID",
		Tags:        []string{"Artists"},
	}, s.handleGetArtist)

	huma.Register(s.api, huma.Operation{
		OperationID: "getArtistTattoos",
		Method:      http.MethodGet,
		Path:        "/api/v1/artists/{id}/tattoos",
		Summary:     "Get artist tattoos",
		Description: "Returns the tattoo catalog for an artist",
		Tags:        []string{"Artists"},
	}, s.handleGetArtistTattoos)
}

// === DTOs ===

// ArtistResponse contains artist profile data in API responses.
type ArtistResponse struct {
	ID        string `json:"id" doc:"Artist ID"`
	Name      string `json:"name" doc:"Display name"`
	Location  string `json:"location,omitempty" doc:"Base location"`
	Bio       string `json:"bio,omitempty" doc:"Short biography"`
	Instagram string `json:"instagram,omitempty" doc:"Instagram handle"`
	Website   string `json:"website,omitempty" doc:"Website URL"`
	Email     string `json:"email,omitempty" doc:"Contact email"`
	Phone     string `json:"phone,omitempty" doc:"Contact phone"`
	CreatedAt int64  `json:"created_at" doc:"Creation time in epoch milliseconds"`
	UpdatedAt int64  `json:"updated_at" doc:"Last update time in epoch milliseconds"`
}

func toArtistResponse(a *domain.Artist) ArtistResponse {
	return ArtistResponse{
		ID:        a.ID,
		Name:      a.Name,
		Location:  a.Location,
		Bio:       a.Bio,
		Instagram: a.Instagram,
		Website:   a.Website,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ListArtistsResponse contains a list of artist profiles.
type ListArtistsResponse struct {
	Artists []ArtistResponse `json:"artists" doc:"List of artists"`
}

// ListArtistsOutput wraps the list artists response for Huma.
type ListArtistsOutput struct {
	Body ListArtistsResponse
}

// ArtistOutput wraps a single artist response for Huma.
type ArtistOutput struct {
	Body ArtistResponse
}

// GetMyArtistProfileInput contains parameters for fetching the caller's profile.
type GetMyArtistProfileInput struct {
	Authorization string `header:"Authorization"`
}

// UpsertArtistRequest is the request body for creating or updating a profile.
type UpsertArtistRequest struct {
	Name      string `json:"name" doc:"Display name"`
	Location  string `json:"location,omitempty" doc:"Base location"`
	Bio       string `json:"bio,omitempty" doc:"Short biography"`
	Instagram string `json:"instagram,omitempty" doc:"Instagram handle"`
	Website   string `json:"website,omitempty" doc:"Website URL"`
	Email     string `json:"email,omitempty" doc:"Contact email"`
	Phone     string `json:"phone,omitempty" doc:"Contact phone"`
}

// UpsertArtistInput wraps the upsert request for Huma.
type UpsertArtistInput struct {
	Authorization string `header:"Authorization"`
	Body          UpsertArtistRequest
}

// GetArtistInput contains parameters for fetching an artist.
type GetArtistInput struct {
	ID string `path:"id" doc:"Artist ID"`
}

// GetArtistTattoosInput contains parameters for fetching an artist's catalog.
type GetArtistTattoosInput struct {
	ID string `path:"id" doc:"Artist ID"`
}

// === Handlers ===

func (s *Server) handleListArtists(ctx context.Context, _ *struct{}) (*ListArtistsOutput, error) {
	artists, err := s.services.Artist.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ArtistResponse, len(artists))
	for i, a := range artists {
		resp[i] = toArtistResponse(a)
	}

	return &ListArtistsOutput{Body: ListArtistsResponse{Artists: resp}}, nil
}

func (s *Server) handleGetMyArtistProfile(ctx context.Context, input *GetMyArtistProfileInput) (*ArtistOutput, error) {
	userID, err := s.authenticateRequest(input.Authorization)
	if err != nil {
		return nil, err
	}

	artist, err := s.services.Artist.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ArtistOutput{Body: toArtistResponse(artist)}, nil
}

func (s *Server) handleUpsertArtistProfile(ctx context.Context, input *UpsertArtistInput) (*ArtistOutput, error) {
	userID, err := s.authenticateRequest(input.Authorization)
	if err != nil {
		return nil, err
	}

	artist, err := s.services.Artist.Upsert(ctx, userID, service.ArtistProfile{
		Name:      input.Body.Name,
		Location:  input.Body.Location,
		Bio:       input.Body.Bio,
		Instagram: input.Body.Instagram,
		Website:   input.Body.Website,
		Email:     input.Body.Email,
		Phone:     input.Body.Phone,
	})
	if err != nil {
		return nil, err
	}

	return &ArtistOutput{Body: toArtistResponse(artist)}, nil
}

func (s *Server) handleGetArtist(ctx context.Context, input *GetArtistInput) (*ArtistOutput, error) {
	artist, err := s.services.Artist.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &ArtistOutput{Body: toArtistResponse(artist)}, nil
}

func (s *Server) handleGetArtistTattoos(ctx context.Context, input *GetArtistTattoosInput) (*ListTattoosOutput, error) {
	tattoos, err := s.services.Tattoo.ListByArtist(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	resp := make([]TattooResponse, len(tattoos))
	for i, t := range tattoos {
		resp[i] = toTattooResponse(t)
	}

	return &ListTattoosOutput{Body: ListTattoosResponse{Tattoos: resp}}, nil
}
