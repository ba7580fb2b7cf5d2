package repositories

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

const bestOfWeekColumns = `id, athlete_id, week_start, achievements, set_by`

// GetCurrentBestOfWeek returns the latest record whose week_start equals the start of the current week.
func (r *PostgresStore) GetCurrentBestOfWeek(ctx context.Context) (*models.BestOfWeek, error) {
	const query = `
		SELECT ` + bestOfWeekColumns + `
		FROM best_of_week
		WHERE week_start = $1
		ORDER BY seq DESC
		LIMIT 1
	`
	return getOne[models.BestOfWeek](ctx, r.executor(ctx), query, models.StartOfWeek(r.now()))
}

func (r *PostgresStore) SetBestOfWeek(ctx context.Context, in models.NewBestOfWeek) (*models.BestOfWeek, error) {
	b := models.BestOfWeek{
		ID:           newID(),
		AthleteID:    in.AthleteID,
		Achievements: in.Achievements,
		SetBy:        in.SetBy,
	}
	if in.WeekStart != nil {
		b.WeekStart = models.Stamp(*in.WeekStart)
	} else {
		b.WeekStart = models.StartOfWeek(r.now())
	}

	const query = `
		INSERT INTO best_of_week (` + bestOfWeekColumns + `)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := execAffected(ctx, r.executor(ctx), query,
		b.ID, b.AthleteID, b.WeekStart, b.Achievements, b.SetBy); err != nil {
		return nil, err
	}
	return &b, nil
}
