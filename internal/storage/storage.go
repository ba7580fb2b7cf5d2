// Package storage defines the persistence contract of the team-management service.
//
// Lookups, updates and deletes signal a missing record with an absent value (nil record, false),
// never with an error. Errors are reserved for backend faults. Implementations validate nothing:
// uniqueness, foreign keys and enum values are the caller's concern. A backend that also enforces
// uniqueness natively reports a violation as ErrAlreadyExists. Collections come back in
// unspecified order and deletes never cascade.
package storage

import (
	"context"
	"errors"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// ErrAlreadyExists indicates a write hit a uniqueness constraint of the backend.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore persists user accounts.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, in models.NewUser) (*models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

// AthleteStore persists athlete profiles.
type AthleteStore interface {
	GetAthlete(ctx context.Context, id string) (*models.Athlete, error)
	GetAthleteByUserID(ctx context.Context, userID string) (*models.Athlete, error)
	GetAllAthletes(ctx context.Context) ([]models.Athlete, error)
	CreateAthlete(ctx context.Context, in models.NewAthlete) (*models.Athlete, error)
	UpdateAthlete(ctx context.Context, id string, patch models.AthletePatch) (*models.Athlete, error)
	DeleteAthlete(ctx context.Context, id string) (bool, error)
}

// ExerciseStore persists the exercise library.
type ExerciseStore interface {
	GetExercise(ctx context.Context, id string) (*models.Exercise, error)
	GetAllExercises(ctx context.Context) ([]models.Exercise, error)
	GetExercisesByCategory(ctx context.Context, category models.ExerciseCategory) ([]models.Exercise, error)
	CreateExercise(ctx context.Context, in models.NewExercise) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, id string, patch models.ExercisePatch) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, id string) (bool, error)
}

// TrainingSessionStore persists training sessions.
type TrainingSessionStore interface {
	GetTrainingSession(ctx context.Context, id string) (*models.TrainingSession, error)
	GetTrainingSessionsByAthlete(ctx context.Context, athleteID string) ([]models.TrainingSession, error)
	CreateTrainingSession(ctx context.Context, in models.NewTrainingSession) (*models.TrainingSession, error)
	UpdateTrainingSession(ctx context.Context, id string, patch models.TrainingSessionPatch) (*models.TrainingSession, error)
	DeleteTrainingSession(ctx context.Context, id string) (bool, error)
}

// EventStore persists calendar events.
type EventStore interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	// GetUpcomingEvents returns events whose start date is strictly after the current time.
	GetUpcomingEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, in models.NewEvent) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) (bool, error)
}

// GalleryStore persists gallery media.
type GalleryStore interface {
	GetGalleryItem(ctx context.Context, id string) (*models.GalleryItem, error)
	GetAllGalleryItems(ctx context.Context) ([]models.GalleryItem, error)
	GetGalleryItemsByAlbum(ctx context.Context, album string) ([]models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, in models.NewGalleryItem) (*models.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, id string, patch models.GalleryItemPatch) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) (bool, error)
}

// BestOfWeekStore persists featured-athlete records.
type BestOfWeekStore interface {
	// GetCurrentBestOfWeek returns a record whose week start equals models.StartOfWeek of the current time.
	GetCurrentBestOfWeek(ctx context.Context) (*models.BestOfWeek, error)
	// SetBestOfWeek always adds a new record. A nil WeekStart is stored as the current week boundary.
	SetBestOfWeek(ctx context.Context, in models.NewBestOfWeek) (*models.BestOfWeek, error)
}

// LiveStreamStore persists live stream announcements.
type LiveStreamStore interface {
	GetLiveStream(ctx context.Context, id string) (*models.LiveStream, error)
	GetAllLiveStreams(ctx context.Context) ([]models.LiveStream, error)
	GetActiveLiveStreams(ctx context.Context) ([]models.LiveStream, error)
	CreateLiveStream(ctx context.Context, in models.NewLiveStream) (*models.LiveStream, error)
	UpdateLiveStream(ctx context.Context, id string, patch models.LiveStreamPatch) (*models.LiveStream, error)
	DeleteLiveStream(ctx context.Context, id string) (bool, error)
}

// Storage is the full persistence contract. Every backend implements all of it.
type Storage interface {
	UserStore
	AthleteStore
	ExerciseStore
	TrainingSessionStore
	EventStore
	GalleryStore
	BestOfWeekStore
	LiveStreamStore
}
