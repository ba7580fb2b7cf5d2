package memory

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

func (s *Store) GetTrainingSession(ctx context.Context, id string) (*models.TrainingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts, _ := s.sessions.get(id)
	return ts, nil
}

func (s *Store) GetTrainingSessionsByAthlete(ctx context.Context, athleteID string) ([]models.TrainingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions.filter(func(ts *models.TrainingSession) bool { return ts.AthleteID == athleteID }), nil
}

// CreateTrainingSession stores a session completed now.
func (s *Store) CreateTrainingSession(ctx context.Context, in models.NewTrainingSession) (*models.TrainingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := models.TrainingSession{
		ID:          newID(),
		AthleteID:   in.AthleteID,
		ExerciseID:  in.ExerciseID,
		Results:     in.Results,
		CompletedAt: s.now(),
	}
	return s.sessions.put(ts.ID, ts), nil
}

func (s *Store) UpdateTrainingSession(ctx context.Context, id string, patch models.TrainingSessionPatch) (*models.TrainingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.sessions.get(id)
	if !ok {
		return nil, nil
	}
	ts.Apply(patch)
	return s.sessions.put(id, *ts), nil
}

func (s *Store) DeleteTrainingSession(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.remove(id), nil
}
