package models

import "time"

// MediaType is the kind of a gallery item.
type MediaType string

// Supported media types
const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// DefaultAlbum is assigned to gallery items created without an album.
const DefaultAlbum = "general"

// GalleryItem is an uploaded picture or video.
type GalleryItem struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Type        MediaType `json:"type" db:"type"`
	URL         string    `json:"url" db:"url"`
	Album       string    `json:"album" db:"album"`
	UploadedBy  string    `json:"uploadedBy" db:"uploaded_by"`
	UploadedAt  time.Time `json:"uploadedAt" db:"uploaded_at"` // Set at creation
}

// NewGalleryItem holds the fields needed to add a gallery item.
type NewGalleryItem struct {
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`
	Type        MediaType `json:"type" validate:"required,oneof=image video"`
	URL         string    `json:"url" validate:"required,url"`
	Album       *string   `json:"album"`
	UploadedBy  string    `json:"uploadedBy" validate:"required"`
}

// GalleryItemPatch is a partial gallery item update.
type GalleryItemPatch struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1"`
	Description Nullable[string] `json:"description,omitzero"`
	Type        *MediaType       `json:"type,omitempty" validate:"omitempty,oneof=image video"`
	URL         *string          `json:"url,omitempty" validate:"omitempty,url"`
	Album       *string          `json:"album,omitempty" validate:"omitempty,min=1"`
}

// Apply merges the supplied patch fields onto g.
func (g *GalleryItem) Apply(p GalleryItemPatch) {
	assign(&g.Title, p.Title)
	p.Description.applyTo(&g.Description)
	assign(&g.Type, p.Type)
	assign(&g.URL, p.URL)
	assign(&g.Album, p.Album)
}
