package models

import "time"

// EventType classifies calendar events.
type EventType string

// Supported event types
const (
	EventTraining EventType = "training"
	EventGame     EventType = "game"
	EventMeeting  EventType = "meeting"
)

// Event is a team calendar entry.
type Event struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	EventType   EventType  `json:"eventType" db:"event_type"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate" db:"end_date"`
	IsMandatory bool       `json:"isMandatory" db:"is_mandatory"`
	CreatedBy   string     `json:"createdBy" db:"created_by"`
}

// NewEvent holds the fields needed to create an event.
type NewEvent struct {
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	EventType   EventType  `json:"eventType" validate:"required,oneof=training game meeting"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate"`
	IsMandatory *bool      `json:"isMandatory"`
	CreatedBy   string     `json:"createdBy" validate:"required"`
}

// EventPatch is a partial event update.
type EventPatch struct {
	Title       *string             `json:"title,omitempty" validate:"omitempty,min=1"`
	Description Nullable[string]    `json:"description,omitzero"`
	EventType   *EventType          `json:"eventType,omitempty" validate:"omitempty,oneof=training game meeting"`
	StartDate   *time.Time          `json:"startDate,omitempty"`
	EndDate     Nullable[time.Time] `json:"endDate,omitzero"`
	IsMandatory *bool               `json:"isMandatory,omitempty"`
}

// Apply merges the supplied patch fields onto e.
func (e *Event) Apply(p EventPatch) {
	assign(&e.Title, p.Title)
	p.Description.applyTo(&e.Description)
	assign(&e.EventType, p.EventType)
	assign(&e.StartDate, p.StartDate)
	p.EndDate.applyTo(&e.EndDate)
	assign(&e.IsMandatory, p.IsMandatory)
}
