package models

import "time"

// DefaultOverallPerformance is the score of a freshly created athlete profile.
const DefaultOverallPerformance = "0"

// Athlete is the performance profile owned by exactly one user.
type Athlete struct {
	ID                 string     `json:"id" db:"id"`
	UserID             string     `json:"userId" db:"user_id"`
	Height             *string    `json:"height" db:"height"`
	Weight             *string    `json:"weight" db:"weight"`
	SleepHours         *string    `json:"sleepHours" db:"sleep_hours"`
	OverallPerformance string     `json:"overallPerformance" db:"overall_performance"` // Decimal string
	LastTraining       *time.Time `json:"lastTraining" db:"last_training"`
}

// AthleteWithUser is an athlete profile joined with its owning account.
// The user is nil when the account no longer exists.
type AthleteWithUser struct {
	Athlete
	User *User `json:"user"`
}

// NewAthlete holds the fields needed to create an athlete profile.
type NewAthlete struct {
	UserID             string     `json:"userId" validate:"required"`
	Height             *string    `json:"height"`
	Weight             *string    `json:"weight"`
	SleepHours         *string    `json:"sleepHours"`
	OverallPerformance *string    `json:"overallPerformance" validate:"omitempty,numeric"`
	LastTraining       *time.Time `json:"lastTraining"`
}

// AthletePatch is a partial athlete update.
type AthletePatch struct {
	Height             Nullable[string]    `json:"height,omitzero"`
	Weight             Nullable[string]    `json:"weight,omitzero"`
	SleepHours         Nullable[string]    `json:"sleepHours,omitzero"`
	OverallPerformance *string             `json:"overallPerformance,omitempty" validate:"omitempty,numeric"`
	LastTraining       Nullable[time.Time] `json:"lastTraining,omitzero"`
}

// Apply merges the supplied patch fields onto a.
func (a *Athlete) Apply(p AthletePatch) {
	p.Height.applyTo(&a.Height)
	p.Weight.applyTo(&a.Weight)
	p.SleepHours.applyTo(&a.SleepHours)
	assign(&a.OverallPerformance, p.OverallPerformance)
	p.LastTraining.applyTo(&a.LastTraining)
}
