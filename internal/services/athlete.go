package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

// AthleteService manages athlete profiles.
type AthleteService struct {
	users    storage.UserStore
	athletes storage.AthleteStore
	sessions storage.TrainingSessionStore
	pub      *Publisher
}

// NewAthleteService creates a new AthleteService.
func NewAthleteService(users storage.UserStore, athletes storage.AthleteStore, sessions storage.TrainingSessionStore, pub *Publisher) *AthleteService {
	return &AthleteService{users: users, athletes: athletes, sessions: sessions, pub: pub}
}

// Get returns the athlete profile by id, or ErrNotFound.
func (s *AthleteService) Get(ctx context.Context, id string) (*models.Athlete, error) {
	a, err := s.athletes.GetAthlete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get athlete", "id", id, "error", err)
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// GetByUser returns the profile owned by the user, or ErrNotFound.
func (s *AthleteService) GetByUser(ctx context.Context, userID string) (*models.Athlete, error) {
	a, err := s.athletes.GetAthleteByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get athlete by user", "user_id", userID, "error", err)
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// ListWithUsers returns every profile joined with its account. Profiles of deleted accounts carry a nil user.
func (s *AthleteService) ListWithUsers(ctx context.Context) ([]models.AthleteWithUser, error) {
	athletes, err := s.athletes.GetAllAthletes(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list athletes", "error", err)
		return nil, err
	}

	out := make([]models.AthleteWithUser, 0, len(athletes))
	for _, a := range athletes {
		u, err := s.users.GetUser(ctx, a.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get athlete user", "user_id", a.UserID, "error", err)
			return nil, err
		}
		out = append(out, models.AthleteWithUser{Athlete: a, User: u})
	}
	return out, nil
}

// Sessions lists the training sessions of an existing athlete.
func (s *AthleteService) Sessions(ctx context.Context, athleteID string) ([]models.TrainingSession, error) {
	if _, err := s.Get(ctx, athleteID); err != nil {
		return nil, err
	}
	list, err := s.sessions.GetTrainingSessionsByAthlete(ctx, athleteID)
	if err != nil {
		logger.Log.Errorw("failed to list sessions", "athlete_id", athleteID, "error", err)
		return nil, err
	}
	return list, nil
}

// Create adds a profile for a user that exists and has none yet.
func (s *AthleteService) Create(ctx context.Context, in models.NewAthlete) (*models.Athlete, error) {
	u, err := s.users.GetUser(ctx, in.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", in.UserID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, ErrReferenceNotFound
	}

	existing, err := s.athletes.GetAthleteByUserID(ctx, in.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get athlete by user", "user_id", in.UserID, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrInvalidInput
	}

	a, err := s.athletes.CreateAthlete(ctx, in)
	if errors.Is(err, storage.ErrAlreadyExists) {
		logger.Log.Errorw("athlete profile already exists", "user_id", in.UserID, "error", err)
		return nil, ErrInvalidInput
	}
	if err != nil {
		logger.Log.Errorw("failed to create athlete", "user_id", in.UserID, "error", err)
		return nil, err
	}
	s.pub.Publish(ctx, EntityAthlete, models.OperationCreate, a.ID)
	return a, nil
}

// Update applies the patch to an existing profile and publishes the change.
func (s *AthleteService) Update(ctx context.Context, id string, patch models.AthletePatch) (*models.Athlete, error) {
	a, err := s.athletes.UpdateAthlete(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update athlete", "id", id, "error", err)
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	s.pub.Publish(ctx, EntityAthlete, models.OperationUpdate, id)
	return a, nil
}

// Delete removes the profile. Its sessions and account are left in place.
func (s *AthleteService) Delete(ctx context.Context, id string) error {
	return deleteAndPublish(ctx, s.pub, EntityAthlete, id, s.athletes.DeleteAthlete)
}
