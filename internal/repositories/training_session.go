package repositories

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

const sessionColumns = `id, athlete_id, exercise_id, results, completed_at`

func (r *PostgresStore) GetTrainingSession(ctx context.Context, id string) (*models.TrainingSession, error) {
	const query = `SELECT ` + sessionColumns + ` FROM training_sessions WHERE id = $1`
	return getOne[models.TrainingSession](ctx, r.executor(ctx), query, id)
}

func (r *PostgresStore) GetTrainingSessionsByAthlete(ctx context.Context, athleteID string) ([]models.TrainingSession, error) {
	const query = `SELECT ` + sessionColumns + ` FROM training_sessions WHERE athlete_id = $1`
	return selectAll[models.TrainingSession](ctx, r.executor(ctx), query, athleteID)
}

func (r *PostgresStore) CreateTrainingSession(ctx context.Context, in models.NewTrainingSession) (*models.TrainingSession, error) {
	ts := models.TrainingSession{
		ID:          newID(),
		AthleteID:   in.AthleteID,
		ExerciseID:  in.ExerciseID,
		Results:     in.Results,
		CompletedAt: models.Stamp(r.now().UTC()),
	}

	const query = `
		INSERT INTO training_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := execAffected(ctx, r.executor(ctx), query,
		ts.ID, ts.AthleteID, ts.ExerciseID, ts.Results, ts.CompletedAt); err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *PostgresStore) UpdateTrainingSession(ctx context.Context, id string, patch models.TrainingSessionPatch) (*models.TrainingSession, error) {
	ts, err := r.GetTrainingSession(ctx, id)
	if err != nil || ts == nil {
		return nil, err
	}
	ts.Apply(patch)
	ts.CompletedAt = models.Stamp(ts.CompletedAt)

	const query = `
		UPDATE training_sessions
		SET exercise_id = $2, results = $3, completed_at = $4
		WHERE id = $1
	`
	affected, err := execAffected(ctx, r.executor(ctx), query, ts.ID, ts.ExerciseID, ts.Results, ts.CompletedAt)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return ts, nil
}

func (r *PostgresStore) DeleteTrainingSession(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.executor(ctx), "training_sessions", id)
}
