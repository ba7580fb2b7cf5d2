package models

import "time"

// Achievements describes why an athlete was featured.
type Achievements struct {
	Shooting    *string `json:"shooting,omitempty"` // e.g. "12/15 from three"
	Rebounds    *int    `json:"rebounds,omitempty"`
	Assists     *int    `json:"assists,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BestOfWeek is the featured-athlete record of one calendar week.
type BestOfWeek struct {
	ID           string       `json:"id" db:"id"`
	AthleteID    string       `json:"athleteId" db:"athlete_id"`
	WeekStart    time.Time    `json:"weekStart" db:"week_start"`
	Achievements Achievements `json:"achievements" db:"achievements"`
	SetBy        string       `json:"setBy" db:"set_by"` // User id
}

// NewBestOfWeek holds the fields needed to feature an athlete.
// A nil WeekStart means the week containing now.
type NewBestOfWeek struct {
	AthleteID    string       `json:"athleteId" validate:"required"`
	WeekStart    *time.Time   `json:"weekStart"`
	Achievements Achievements `json:"achievements"`
	SetBy        string       `json:"setBy" validate:"required"`
}

// FeaturedAthlete is the current best-of-week record with its athlete and account.
type FeaturedAthlete struct {
	BestOfWeek
	Athlete *Athlete `json:"athlete"`
	User    *User    `json:"user"`
}

// StartOfWeek returns midnight of the Sunday that starts the week containing t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}
