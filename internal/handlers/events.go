package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// EventManager defines the calendar operations used by the event routes.
type EventManager interface {
	Get(ctx context.Context, id string) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Upcoming(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, in models.NewEvent) (*models.Event, error)
	Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

// NewListEventsHandler returns an HTTP handler listing all events.
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func NewListEventsHandler(svc EventManager) http.HandlerFunc {
	return listAll("Event", svc.List)
}

// NewUpcomingEventsHandler returns an HTTP handler listing events that start after now.
// @Summary List upcoming events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events/upcoming [get]
func NewUpcomingEventsHandler(svc EventManager) http.HandlerFunc {
	return listAll("Event", svc.Upcoming)
}

// NewGetEventHandler returns an HTTP handler that fetches one event.
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func NewGetEventHandler(svc EventManager) http.HandlerFunc {
	return getByID("Event", svc.Get)
}

// NewCreateEventHandler returns an HTTP handler that adds an event.
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.NewEvent true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body / end before start"
// @Router /events [post]
func NewCreateEventHandler(svc EventManager) http.HandlerFunc {
	return create("Event", svc.Create)
}

// NewUpdateEventHandler returns an HTTP handler that partially updates an event.
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param patch body models.EventPatch true "Fields to change"
// @Success 200 {object} models.Event
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body / end before start"
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Router /events/{id} [patch]
func NewUpdateEventHandler(svc EventManager) http.HandlerFunc {
	return update("Event", svc.Update)
}

// NewDeleteEventHandler returns an HTTP handler that deletes an event.
// @Summary Delete event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func NewDeleteEventHandler(svc EventManager) http.HandlerFunc {
	return deleteByID("Event", svc.Delete)
}
