package memory

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

func (s *Store) GetExercise(ctx context.Context, id string) (*models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, _ := s.exercises.get(id)
	return e, nil
}

func (s *Store) GetAllExercises(ctx context.Context) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.exercises.filter(nil), nil
}

func (s *Store) GetExercisesByCategory(ctx context.Context, category models.ExerciseCategory) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.exercises.filter(func(e *models.Exercise) bool { return e.Category == category }), nil
}

func (s *Store) CreateExercise(ctx context.Context, in models.NewExercise) (*models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.Exercise{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		VideoURL:    in.VideoURL,
		Metrics:     in.Metrics,
		CreatedBy:   in.CreatedBy,
	}
	return s.exercises.put(e.ID, e), nil
}

func (s *Store) UpdateExercise(ctx context.Context, id string, patch models.ExercisePatch) (*models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.exercises.get(id)
	if !ok {
		return nil, nil
	}
	e.Apply(patch)
	return s.exercises.put(id, *e), nil
}

func (s *Store) DeleteExercise(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.exercises.remove(id), nil
}
