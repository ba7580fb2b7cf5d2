package repositories

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

const athleteColumns = `id, user_id, height, weight, sleep_hours, overall_performance, last_training`

func (r *PostgresStore) GetAthlete(ctx context.Context, id string) (*models.Athlete, error) {
	const query = `SELECT ` + athleteColumns + ` FROM athletes WHERE id = $1`
	return getOne[models.Athlete](ctx, r.executor(ctx), query, id)
}

func (r *PostgresStore) GetAthleteByUserID(ctx context.Context, userID string) (*models.Athlete, error) {
	const query = `SELECT ` + athleteColumns + ` FROM athletes WHERE user_id = $1 LIMIT 1`
	return getOne[models.Athlete](ctx, r.executor(ctx), query, userID)
}

func (r *PostgresStore) GetAllAthletes(ctx context.Context) ([]models.Athlete, error) {
	const query = `SELECT ` + athleteColumns + ` FROM athletes`
	return selectAll[models.Athlete](ctx, r.executor(ctx), query)
}

func (r *PostgresStore) CreateAthlete(ctx context.Context, in models.NewAthlete) (*models.Athlete, error) {
	a := models.Athlete{
		ID:                 newID(),
		UserID:             in.UserID,
		Height:             in.Height,
		Weight:             in.Weight,
		SleepHours:         in.SleepHours,
		OverallPerformance: models.DefaultOverallPerformance,
		LastTraining:       models.StampPtr(in.LastTraining),
	}
	if in.OverallPerformance != nil {
		a.OverallPerformance = *in.OverallPerformance
	}

	const query = `
		INSERT INTO athletes (` + athleteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := execAffected(ctx, r.executor(ctx), query,
		a.ID, a.UserID, a.Height, a.Weight, a.SleepHours, a.OverallPerformance, a.LastTraining); err != nil {
		return nil, mapConstraint(err)
	}
	return &a, nil
}

func (r *PostgresStore) UpdateAthlete(ctx context.Context, id string, patch models.AthletePatch) (*models.Athlete, error) {
	a, err := r.GetAthlete(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}
	a.Apply(patch)
	a.LastTraining = models.StampPtr(a.LastTraining)

	const query = `
		UPDATE athletes
		SET height = $2, weight = $3, sleep_hours = $4, overall_performance = $5, last_training = $6
		WHERE id = $1
	`
	affected, err := execAffected(ctx, r.executor(ctx), query,
		a.ID, a.Height, a.Weight, a.SleepHours, a.OverallPerformance, a.LastTraining)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return a, nil
}

func (r *PostgresStore) DeleteAthlete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.executor(ctx), "athletes", id)
}
