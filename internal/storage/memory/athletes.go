package memory

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

func (s *Store) GetAthlete(ctx context.Context, id string) (*models.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, _ := s.athletes.get(id)
	return a, nil
}

func (s *Store) GetAthleteByUserID(ctx context.Context, userID string) (*models.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.athletes.find(func(a *models.Athlete) bool { return a.UserID == userID }), nil
}

func (s *Store) GetAllAthletes(ctx context.Context) ([]models.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.athletes.filter(nil), nil
}

// CreateAthlete stores a new profile. A missing overall performance defaults to "0".
func (s *Store) CreateAthlete(ctx context.Context, in models.NewAthlete) (*models.Athlete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.Athlete{
		ID:                 newID(),
		UserID:             in.UserID,
		Height:             in.Height,
		Weight:             in.Weight,
		SleepHours:         in.SleepHours,
		OverallPerformance: models.DefaultOverallPerformance,
		LastTraining:       in.LastTraining,
	}
	if in.OverallPerformance != nil {
		a.OverallPerformance = *in.OverallPerformance
	}
	return s.athletes.put(a.ID, a), nil
}

func (s *Store) UpdateAthlete(ctx context.Context, id string, patch models.AthletePatch) (*models.Athlete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.athletes.get(id)
	if !ok {
		return nil, nil
	}
	a.Apply(patch)
	return s.athletes.put(id, *a), nil
}

func (s *Store) DeleteAthlete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.athletes.remove(id), nil
}
