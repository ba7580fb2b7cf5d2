package models

import "time"

// StreamCategory is the league a live stream belongs to.
type StreamCategory string

// Supported stream categories
const (
	StreamNBB StreamCategory = "nbb"
	StreamNBA StreamCategory = "nba"
)

// LiveStream announces an external video broadcast.
type LiveStream struct {
	ID           string         `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Description  *string        `json:"description" db:"description"`
	YoutubeURL   string         `json:"youtubeUrl" db:"youtube_url"`
	IsActive     bool           `json:"isActive" db:"is_active"`
	ScheduledFor *time.Time     `json:"scheduledFor" db:"scheduled_for"`
	Category     StreamCategory `json:"category" db:"category"`
	CreatedBy    string         `json:"createdBy" db:"created_by"`
}

// NewLiveStream holds the fields needed to announce a stream.
type NewLiveStream struct {
	Title        string          `json:"title" validate:"required"`
	Description  *string         `json:"description"`
	YoutubeURL   string          `json:"youtubeUrl" validate:"required,url"`
	IsActive     *bool           `json:"isActive"`
	ScheduledFor *time.Time      `json:"scheduledFor"`
	Category     *StreamCategory `json:"category" validate:"omitempty,oneof=nbb nba"`
	CreatedBy    string          `json:"createdBy" validate:"required"`
}

// LiveStreamPatch is a partial live stream update.
type LiveStreamPatch struct {
	Title        *string             `json:"title,omitempty" validate:"omitempty,min=1"`
	Description  Nullable[string]    `json:"description,omitzero"`
	YoutubeURL   *string             `json:"youtubeUrl,omitempty" validate:"omitempty,url"`
	IsActive     *bool               `json:"isActive,omitempty"`
	ScheduledFor Nullable[time.Time] `json:"scheduledFor,omitzero"`
	Category     *StreamCategory     `json:"category,omitempty" validate:"omitempty,oneof=nbb nba"`
}

// Apply merges the supplied patch fields onto s.
func (s *LiveStream) Apply(p LiveStreamPatch) {
	assign(&s.Title, p.Title)
	p.Description.applyTo(&s.Description)
	assign(&s.YoutubeURL, p.YoutubeURL)
	assign(&s.IsActive, p.IsActive)
	p.ScheduledFor.applyTo(&s.ScheduledFor)
	assign(&s.Category, p.Category)
}
