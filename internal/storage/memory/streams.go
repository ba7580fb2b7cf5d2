package memory

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

func (s *Store) GetLiveStream(ctx context.Context, id string) (*models.LiveStream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ls, _ := s.streams.get(id)
	return ls, nil
}

func (s *Store) GetAllLiveStreams(ctx context.Context) ([]models.LiveStream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.streams.filter(nil), nil
}

func (s *Store) GetActiveLiveStreams(ctx context.Context) ([]models.LiveStream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.streams.filter(func(ls *models.LiveStream) bool { return ls.IsActive }), nil
}

// CreateLiveStream stores an inactive "nbb" stream unless the input says otherwise.
func (s *Store) CreateLiveStream(ctx context.Context, in models.NewLiveStream) (*models.LiveStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ls := models.LiveStream{
		ID:           newID(),
		Title:        in.Title,
		Description:  in.Description,
		YoutubeURL:   in.YoutubeURL,
		ScheduledFor: in.ScheduledFor,
		Category:     models.StreamNBB,
		CreatedBy:    in.CreatedBy,
	}
	if in.IsActive != nil {
		ls.IsActive = *in.IsActive
	}
	if in.Category != nil {
		ls.Category = *in.Category
	}
	return s.streams.put(ls.ID, ls), nil
}

func (s *Store) UpdateLiveStream(ctx context.Context, id string, patch models.LiveStreamPatch) (*models.LiveStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ls, ok := s.streams.get(id)
	if !ok {
		return nil, nil
	}
	ls.Apply(patch)
	return s.streams.put(id, *ls), nil
}

func (s *Store) DeleteLiveStream(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.streams.remove(id), nil
}
