package services

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

// TrainingService records training sessions.
type TrainingService struct {
	athletes  storage.AthleteStore
	exercises storage.ExerciseStore
	sessions  storage.TrainingSessionStore
	pub       *Publisher
}

// NewTrainingService creates a new TrainingService.
func NewTrainingService(athletes storage.AthleteStore, exercises storage.ExerciseStore, sessions storage.TrainingSessionStore, pub *Publisher) *TrainingService {
	return &TrainingService{athletes: athletes, exercises: exercises, sessions: sessions, pub: pub}
}

// Get returns the training session by id, or ErrNotFound.
func (s *TrainingService) Get(ctx context.Context, id string) (*models.TrainingSession, error) {
	ts, err := s.sessions.GetTrainingSession(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get session", "id", id, "error", err)
		return nil, err
	}
	if ts == nil {
		return nil, ErrNotFound
	}
	return ts, nil
}

// ByAthlete lists the sessions of an athlete without checking the athlete exists.
func (s *TrainingService) ByAthlete(ctx context.Context, athleteID string) ([]models.TrainingSession, error) {
	list, err := s.sessions.GetTrainingSessionsByAthlete(ctx, athleteID)
	if err != nil {
		logger.Log.Errorw("failed to list sessions", "athlete_id", athleteID, "error", err)
		return nil, err
	}
	return list, nil
}

// Create records a session for existing athlete and exercise records and stamps the athlete's last training.
func (s *TrainingService) Create(ctx context.Context, in models.NewTrainingSession) (*models.TrainingSession, error) {
	athlete, err := s.athletes.GetAthlete(ctx, in.AthleteID)
	if err != nil {
		logger.Log.Errorw("failed to get athlete", "id", in.AthleteID, "error", err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrReferenceNotFound
	}
	if err := s.requireExercise(ctx, in.ExerciseID); err != nil {
		return nil, err
	}

	ts, err := s.sessions.CreateTrainingSession(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create session", "athlete_id", in.AthleteID, "error", err)
		return nil, err
	}
	s.pub.Publish(ctx, EntitySession, models.OperationCreate, ts.ID)

	completed := ts.CompletedAt
	if _, err := s.athletes.UpdateAthlete(ctx, athlete.ID, models.AthletePatch{
		LastTraining: models.Set(completed),
	}); err != nil {
		logger.Log.Errorw("failed to stamp last training", "athlete_id", athlete.ID, "error", err)
		return nil, err
	}
	s.pub.Publish(ctx, EntityAthlete, models.OperationUpdate, athlete.ID)

	return ts, nil
}

// Update applies the patch. A new exercise id must reference an existing exercise.
func (s *TrainingService) Update(ctx context.Context, id string, patch models.TrainingSessionPatch) (*models.TrainingSession, error) {
	if patch.ExerciseID != nil {
		if err := s.requireExercise(ctx, *patch.ExerciseID); err != nil {
			return nil, err
		}
	}

	ts, err := s.sessions.UpdateTrainingSession(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update session", "id", id, "error", err)
		return nil, err
	}
	if ts == nil {
		return nil, ErrNotFound
	}
	s.pub.Publish(ctx, EntitySession, models.OperationUpdate, id)
	return ts, nil
}

// Delete removes the training session.
func (s *TrainingService) Delete(ctx context.Context, id string) error {
	return deleteAndPublish(ctx, s.pub, EntitySession, id, s.sessions.DeleteTrainingSession)
}

func (s *TrainingService) requireExercise(ctx context.Context, id string) error {
	e, err := s.exercises.GetExercise(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get exercise", "id", id, "error", err)
		return err
	}
	if e == nil {
		return ErrReferenceNotFound
	}
	return nil
}
