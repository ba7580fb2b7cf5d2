package repositories

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

const exerciseColumns = `id, name, description, category, video_url, metrics, created_by`

func (r *PostgresStore) GetExercise(ctx context.Context, id string) (*models.Exercise, error) {
	const query = `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = $1`
	return getOne[models.Exercise](ctx, r.executor(ctx), query, id)
}

func (r *PostgresStore) GetAllExercises(ctx context.Context) ([]models.Exercise, error) {
	const query = `SELECT ` + exerciseColumns + ` FROM exercises`
	return selectAll[models.Exercise](ctx, r.executor(ctx), query)
}

func (r *PostgresStore) GetExercisesByCategory(ctx context.Context, category models.ExerciseCategory) ([]models.Exercise, error) {
	const query = `SELECT ` + exerciseColumns + ` FROM exercises WHERE category = $1`
	return selectAll[models.Exercise](ctx, r.executor(ctx), query, category)
}

func (r *PostgresStore) CreateExercise(ctx context.Context, in models.NewExercise) (*models.Exercise, error) {
	e := models.Exercise{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		VideoURL:    in.VideoURL,
		Metrics:     in.Metrics,
		CreatedBy:   in.CreatedBy,
	}

	const query = `
		INSERT INTO exercises (` + exerciseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := execAffected(ctx, r.executor(ctx), query,
		e.ID, e.Name, e.Description, e.Category, e.VideoURL, e.Metrics, e.CreatedBy); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresStore) UpdateExercise(ctx context.Context, id string, patch models.ExercisePatch) (*models.Exercise, error) {
	e, err := r.GetExercise(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	e.Apply(patch)

	const query = `
		UPDATE exercises
		SET name = $2, description = $3, category = $4, video_url = $5, metrics = $6
		WHERE id = $1
	`
	affected, err := execAffected(ctx, r.executor(ctx), query,
		e.ID, e.Name, e.Description, e.Category, e.VideoURL, e.Metrics)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return e, nil
}

func (r *PostgresStore) DeleteExercise(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.executor(ctx), "exercises", id)
}
