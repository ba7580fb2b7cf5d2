package services

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

// EventService manages the team calendar.
type EventService struct {
	events storage.EventStore
	pub    *Publisher
}

// NewEventService creates a new EventService.
func NewEventService(events storage.EventStore, pub *Publisher) *EventService {
	return &EventService{events: events, pub: pub}
}

// Get returns the event by id, or ErrNotFound.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	e, err := s.events.GetEvent(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get event", "id", id, "error", err)
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// List returns every event.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	list, err := s.events.GetAllEvents(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list events", "error", err)
		return nil, err
	}
	return list, nil
}

// Upcoming returns events starting strictly after now.
func (s *EventService) Upcoming(ctx context.Context) ([]models.Event, error) {
	list, err := s.events.GetUpcomingEvents(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list upcoming events", "error", err)
		return nil, err
	}
	return list, nil
}

// Create stores an event. An end date before the start date is ErrInvalidInput.
func (s *EventService) Create(ctx context.Context, in models.NewEvent) (*models.Event, error) {
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, ErrInvalidInput
	}

	e, err := s.events.CreateEvent(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create event", "error", err)
		return nil, err
	}
	s.pub.Publish(ctx, EntityEvent, models.OperationCreate, e.ID)
	return e, nil
}

// Update rejects a patch that would leave the end date before the start date.
func (s *EventService) Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := *current
	merged.Apply(patch)
	if merged.EndDate != nil && merged.EndDate.Before(merged.StartDate) {
		return nil, ErrInvalidInput
	}

	e, err := s.events.UpdateEvent(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update event", "id", id, "error", err)
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	s.pub.Publish(ctx, EntityEvent, models.OperationUpdate, id)
	return e, nil
}

// Delete removes the event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	return deleteAndPublish(ctx, s.pub, EntityEvent, id, s.events.DeleteEvent)
}
