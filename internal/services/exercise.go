package services

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

// ExerciseService manages the exercise library.
type ExerciseService struct {
	exercises storage.ExerciseStore
	pub       *Publisher
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(exercises storage.ExerciseStore, pub *Publisher) *ExerciseService {
	return &ExerciseService{exercises: exercises, pub: pub}
}

// Get returns the exercise by id, or ErrNotFound.
func (s *ExerciseService) Get(ctx context.Context, id string) (*models.Exercise, error) {
	e, err := s.exercises.GetExercise(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get exercise", "id", id, "error", err)
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// List returns all exercises, or only those of category when it is non-empty.
func (s *ExerciseService) List(ctx context.Context, category models.ExerciseCategory) ([]models.Exercise, error) {
	var (
		list []models.Exercise
		err  error
	)
	if category == "" {
		list, err = s.exercises.GetAllExercises(ctx)
	} else {
		if !category.Valid() {
			return nil, ErrInvalidInput
		}
		list, err = s.exercises.GetExercisesByCategory(ctx, category)
	}
	if err != nil {
		logger.Log.Errorw("failed to list exercises", "category", category, "error", err)
		return nil, err
	}
	return list, nil
}

// Create adds an exercise to the library.
func (s *ExerciseService) Create(ctx context.Context, in models.NewExercise) (*models.Exercise, error) {
	e, err := s.exercises.CreateExercise(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create exercise", "error", err)
		return nil, err
	}
	s.pub.Publish(ctx, EntityExercise, models.OperationCreate, e.ID)
	return e, nil
}

// Update applies the patch. Metrics are replaced as a whole.
func (s *ExerciseService) Update(ctx context.Context, id string, patch models.ExercisePatch) (*models.Exercise, error) {
	e, err := s.exercises.UpdateExercise(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update exercise", "id", id, "error", err)
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	s.pub.Publish(ctx, EntityExercise, models.OperationUpdate, id)
	return e, nil
}

// Delete removes the exercise. Sessions referencing it are kept.
func (s *ExerciseService) Delete(ctx context.Context, id string) error {
	return deleteAndPublish(ctx, s.pub, EntityExercise, id, s.exercises.DeleteExercise)
}
