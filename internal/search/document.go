// Package search provides full-text search over the tattoo catalog
// using Bleve, with faceted filtering on style, tags, and body part,
// plus fuzzy matching for typo tolerance.
package search

import (
	"github.com/inkmatch/inkmatch-server/internal/domain"
)

// Document is the shape of a tattoo in the Bleve index.
//
// The artist name is denormalized into each tattoo document so a single
// query covers "search by artist" without a join. The trade-off is that
// renaming an artist requires reindexing their tattoos; artist renames
// are rare and the rebuild path covers them.
type Document struct {
	ID          string   `json:"id"`
	ArtistID    string   `json:"artist_id"`
	ArtistName  string   `json:"artist_name,omitempty"`
	Description string   `json:"description,omitempty"`
	Style       string   `json:"style,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	BodyPart    string   `json:"body_part,omitempty"`
	Location    string   `json:"location,omitempty"`
	Size        string   `json:"size,omitempty"`
	Price       float64  `json:"price,omitempty"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *Document) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"artist_id":  d.ArtistID,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
	}

	if d.ArtistName != "" {
		m["artist_name"] = d.ArtistName
	}
	if d.Description != "" {
		m["description"] = d.Description
	}
	if d.Style != "" {
		m["style"] = d.Style
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if d.BodyPart != "" {
		m["body_part"] = d.BodyPart
	}
	if d.Location != "" {
		m["location"] = d.Location
	}
	if d.Size != "" {
		m["size"] = d.Size
	}
	if d.Price > 0 {
		m["price"] = d.Price
	}

	return m
}

// TattooToDocument converts a domain Tattoo to an index Document.
// The artist name must be provided by the caller; this package does not
// reach into the store for it.
func TattooToDocument(t *domain.Tattoo, artistName string) *Document {
	return &Document{
		ID:          t.ID,
		ArtistID:    t.ArtistID,
		ArtistName:  artistName,
		Description: t.Description,
		Style:       t.Style,
		Tags:        t.Tags,
		BodyPart:    t.BodyPart,
		Location:    t.Location,
		Size:        t.Size,
		Price:       t.Price,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
