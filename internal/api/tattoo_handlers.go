package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/inkmatch/inkmatch-server/internal/service"
)

func (s *Server) registerTattooRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTattoos",
		Method:      http.MethodGet,
		Path:        "/api/v1/tattoos",
		Summary:     "List tattoos",
		Description: "Returns the full tattoo catalog",
		Tags:        []string{"Tattoos"},
	}, s.handleListTattoos)

	huma.Register(s.api, huma.Operation{
		OperationID: "uploadTattoo",
		Method:      http.MethodPost,
		Path:        "/api/v1/tattoos",
		Summary:     "Upload tattoo",
		Description: "Adds a tattoo to the authenticated artist's catalog",
		Tags:        []string{"Tattoos"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUploadTattoo)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTattoo",
		Method:      http.MethodGet,
		Path:        "/api/v1/tattoos/{id}",
		Summary:     "Get tattoo",
		Description: "Returns a tattoo by ID",
		Tags:        []string{"Tattoos"},
	}, s.handleGetTattoo)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateTattoo",
		Method:      http.MethodPut,
		Path:        "/api/v1/tattoos/{id}",
		Summary:     "Update tattoo",
		Description: "Replaces a tattoo's details; only the owning artist may update",
		Tags:        []string{"Tattoos"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateTattoo)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteTattoo",
		Method:      http.MethodDelete,
		Path:        "/api/v1/tattoos/{id}",
		Summary:     "Delete tattoo",
		Description: "Removes a tattoo; only the owning artist may delete",
		Tags:        []string{"Tattoos"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteTattoo)
}

// === DTOs ===

// TattooResponse contains tattoo data in API responses.
type TattooResponse struct {
	ID          string   `json:"id" doc:"Tattoo ID"`
	ArtistID    string   `json:"artist_id" doc:"Owning artist ID"`
	ImageURL    string   `json:"image_url" doc:"Image URL"`
	Description string   `json:"description,omitempty" doc:"Free-text description"`
	Price       float64  `json:"price,omitempty" doc:"Price in whole currency units"`
	Location    string   `json:"location,omitempty" doc:"Where the tattoo was done"`
	Style       string   `json:"style,omitempty" doc:"Tattoo style"`
	Tags        []string `json:"tags,omitempty" doc:"Free-form tags"`
	BodyPart    string   `json:"body_part,omitempty" doc:"Body placement"`
	Color       *bool    `json:"color,omitempty" doc:"True for color, false for black and grey"`
	Size        string   `json:"size,omitempty" doc:"Size category: small, medium, or large"`
	CreatedAt   int64    `json:"created_at" doc:"Creation time in epoch milliseconds"`
	UpdatedAt   int64    `json:"updated_at" doc:"Last update time in epoch milliseconds"`
}

func toTattooResponse(t *domain.Tattoo) TattooResponse {
	return TattooResponse{
		ID:          t.ID,
		ArtistID:    t.ArtistID,
		ImageURL:    t.ImageURL,
		Description: t.Description,
		Price:       t.Price,
		Location:    t.Location,
		Style:       t.Style,
		Tags:        t.Tags,
		BodyPart:    t.BodyPart,
		Color:       t.Color,
		Size:        t.Size,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ListTattoosResponse contains a list of tattoos.
type ListTattoosResponse struct {
	Tattoos []TattooResponse `json:"tattoos" doc:"List of tattoos"`
}

// ListTattoosOutput wraps the list tattoos response for Huma.
type ListTattoosOutput struct {
	Body ListTattoosResponse
}

// TattooOutput wraps a single tattoo response for Huma.
type TattooOutput struct {
	Body TattooResponse
}

// TattooRequest is the request body for uploading or updating a tattoo.
type TattooRequest struct {
	ImageURL    string   `json:"image_url" doc:"Image URL"`
	Description string   `json:"description,omitempty" doc:"Free-text description"`
	Price       float64  `json:"price" doc:"Price in whole currency units, must be positive"`
	Location    string   `json:"location,omitempty" doc:"Where the tattoo was done"`
	Style       string   `json:"style,omitempty" doc:"Tattoo style"`
	Tags        []string `json:"tags,omitempty" doc:"Free-form tags"`
	BodyPart    string   `json:"body_part,omitempty" doc:"Body placement"`
	Color       *bool    `json:"color,omitempty" doc:"True for color, false for black and grey"`
	Size        string   `json:"size,omitempty" doc:"Size category: small, medium, or large" enum:"small,medium,large"`
}

func (r TattooRequest) toUpload() service.TattooUpload {
	return service.TattooUpload{
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Price:       r.Price,
		Location:    r.Location,
		Style:       r.Style,
		Tags:        r.Tags,
		BodyPart:    r.BodyPart,
		Color:       r.Color,
		Size:        r.Size,
	}
}

// UploadTattooInput wraps the upload request for Huma.
type UploadTattooInput struct {
	Authorization string `header:"Authorization"`
	Body          TattooRequest
}

// GetTattooInput contains parameters for fetching a tattoo.
type GetTattooInput struct {
	ID string `path:"id" doc:"Tattoo ID"`
}

// UpdateTattooInput wraps the update request for Huma.
type UpdateTattooInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Tattoo ID"`
	Body          TattooRequest
}

// DeleteTattooInput contains parameters for deleting a tattoo.
type DeleteTattooInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Tattoo ID"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// MessageOutput wraps a message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// === Handlers ===

func (s *Server) handleListTattoos(ctx context.Context, _ *struct{}) (*ListTattoosOutput, error) {
	tattoos, err := s.services.Tattoo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]TattooResponse, len(tattoos))
	for i, t := range tattoos {
		resp[i] = toTattooResponse(t)
	}

	return &ListTattoosOutput{Body: ListTattoosResponse{Tattoos: resp}}, nil
}

func (s *Server) handleUploadTattoo(ctx context.Context, input *UploadTattooInput) (*TattooOutput, error) {
	userID, err := s.authenticateRequest(input.Authorization)
	if err != nil {
		return nil, err
	}

	tattoo, err := s.services.Tattoo.Upload(ctx, userID, input.Body.toUpload())
	if err != nil {
		return nil, err
	}

	return &TattooOutput{Body: toTattooResponse(tattoo)}, nil
}

func (s *Server) handleGetTattoo(ctx context.Context, input *GetTattooInput) (*TattooOutput, error) {
	tattoo, err := s.services.Tattoo.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &TattooOutput{Body: toTattooResponse(tattoo)}, nil
}

func (s *Server) handleUpdateTattoo(ctx context.Context, input *UpdateTattooInput) (*TattooOutput, error) {
	userID, err := s.authenticateRequest(input.Authorization)
	if err != nil {
		return nil, err
	}

	tattoo, err := s.services.Tattoo.Update(ctx, userID, input.ID, input.Body.toUpload())
	if err != nil {
		return nil, err
	}

	return &TattooOutput{Body: toTattooResponse(tattoo)}, nil
}

func (s *Server) handleDeleteTattoo(ctx context.Context, input *DeleteTattooInput) (*MessageOutput, error) {
	userID, err := s.authenticateRequest(input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := s.services.Tattoo.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Tattoo deleted"}}, nil
}
