package memory

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

func (s *Store) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, _ := s.events.get(id)
	return e, nil
}

func (s *Store) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.events.filter(nil), nil
}

// GetUpcomingEvents returns events starting strictly after the store clock reading at call time.
func (s *Store) GetUpcomingEvents(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	return s.events.filter(func(e *models.Event) bool { return e.StartDate.After(now) }), nil
}

func (s *Store) CreateEvent(ctx context.Context, in models.NewEvent) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.Event{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		EventType:   in.EventType,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedBy:   in.CreatedBy,
	}
	if in.IsMandatory != nil {
		e.IsMandatory = *in.IsMandatory
	}
	return s.events.put(e.ID, e), nil
}

func (s *Store) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events.get(id)
	if !ok {
		return nil, nil
	}
	e.Apply(patch)
	return s.events.put(id, *e), nil
}

func (s *Store) DeleteEvent(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.events.remove(id), nil
}
