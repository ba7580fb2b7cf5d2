package repositories

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

const liveStreamColumns = `id, title, description, youtube_url, is_active, scheduled_for, category, created_by`

func (r *PostgresStore) GetLiveStream(ctx context.Context, id string) (*models.LiveStream, error) {
	const query = `SELECT ` + liveStreamColumns + ` FROM live_streams WHERE id = $1`
	return getOne[models.LiveStream](ctx, r.executor(ctx), query, id)
}

func (r *PostgresStore) GetAllLiveStreams(ctx context.Context) ([]models.LiveStream, error) {
	const query = `SELECT ` + liveStreamColumns + ` FROM live_streams`
	return selectAll[models.LiveStream](ctx, r.executor(ctx), query)
}

func (r *PostgresStore) GetActiveLiveStreams(ctx context.Context) ([]models.LiveStream, error) {
	const query = `SELECT ` + liveStreamColumns + ` FROM live_streams WHERE is_active`
	return selectAll[models.LiveStream](ctx, r.executor(ctx), query)
}

func (r *PostgresStore) CreateLiveStream(ctx context.Context, in models.NewLiveStream) (*models.LiveStream, error) {
	ls := models.LiveStream{
		ID:           newID(),
		Title:        in.Title,
		Description:  in.Description,
		YoutubeURL:   in.YoutubeURL,
		ScheduledFor: models.StampPtr(in.ScheduledFor),
		Category:     models.StreamNBB,
		CreatedBy:    in.CreatedBy,
	}
	if in.IsActive != nil {
		ls.IsActive = *in.IsActive
	}
	if in.Category != nil {
		ls.Category = *in.Category
	}

	const query = `
		INSERT INTO live_streams (` + liveStreamColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := execAffected(ctx, r.executor(ctx), query,
		ls.ID, ls.Title, ls.Description, ls.YoutubeURL, ls.IsActive, ls.ScheduledFor, ls.Category, ls.CreatedBy); err != nil {
		return nil, err
	}
	return &ls, nil
}

func (r *PostgresStore) UpdateLiveStream(ctx context.Context, id string, patch models.LiveStreamPatch) (*models.LiveStream, error) {
	ls, err := r.GetLiveStream(ctx, id)
	if err != nil || ls == nil {
		return nil, err
	}
	ls.Apply(patch)
	ls.ScheduledFor = models.StampPtr(ls.ScheduledFor)

	const query = `
		UPDATE live_streams
		SET title = $2, description = $3, youtube_url = $4, is_active = $5, scheduled_for = $6, category = $7
		WHERE id = $1
	`
	affected, err := execAffected(ctx, r.executor(ctx), query,
		ls.ID, ls.Title, ls.Description, ls.YoutubeURL, ls.IsActive, ls.ScheduledFor, ls.Category)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return ls, nil
}

func (r *PostgresStore) DeleteLiveStream(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.executor(ctx), "live_streams", id)
}
