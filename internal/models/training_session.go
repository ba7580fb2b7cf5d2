package models

import "time"

// SessionResults are the measured outcomes of one training session.
type SessionResults struct {
	Repetitions *int     `json:"repetitions,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Distance    *float64 `json:"distance,omitempty"`
	Accuracy    *float64 `json:"accuracy,omitempty"`
	Completed   bool     `json:"completed"`
}

// TrainingSession records an athlete performing an exercise.
type TrainingSession struct {
	ID          string         `json:"id" db:"id"`
	AthleteID   string         `json:"athleteId" db:"athlete_id"`
	ExerciseID  string         `json:"exerciseId" db:"exercise_id"`
	Results     SessionResults `json:"results" db:"results"`
	CompletedAt time.Time      `json:"completedAt" db:"completed_at"` // Set at creation
}

// NewTrainingSession holds the fields needed to record a session.
type NewTrainingSession struct {
	AthleteID  string         `json:"athleteId" validate:"required"`
	ExerciseID string         `json:"exerciseId" validate:"required"`
	Results    SessionResults `json:"results"`
}

// TrainingSessionPatch is a partial session update.
type TrainingSessionPatch struct {
	ExerciseID  *string         `json:"exerciseId,omitempty" validate:"omitempty,min=1"`
	Results     *SessionResults `json:"results,omitempty"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

// Apply merges the supplied patch fields onto s.
func (s *TrainingSession) Apply(p TrainingSessionPatch) {
	assign(&s.ExerciseID, p.ExerciseID)
	assign(&s.Results, p.Results)
	assign(&s.CompletedAt, p.CompletedAt)
}
