package repositories

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

const eventColumns = `id, title, description, event_type, start_date, end_date, is_mandatory, created_by`

func (r *PostgresStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	const query = `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return getOne[models.Event](ctx, r.executor(ctx), query, id)
}

func (r *PostgresStore) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const query = `SELECT ` + eventColumns + ` FROM events`
	return selectAll[models.Event](ctx, r.executor(ctx), query)
}

// GetUpcomingEvents compares against the service clock, not the database clock.
func (r *PostgresStore) GetUpcomingEvents(ctx context.Context) ([]models.Event, error) {
	const query = `SELECT ` + eventColumns + ` FROM events WHERE start_date > $1`
	return selectAll[models.Event](ctx, r.executor(ctx), query, r.now().UTC())
}

func (r *PostgresStore) CreateEvent(ctx context.Context, in models.NewEvent) (*models.Event, error) {
	e := models.Event{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		EventType:   in.EventType,
		StartDate:   models.Stamp(in.StartDate),
		EndDate:     models.StampPtr(in.EndDate),
		CreatedBy:   in.CreatedBy,
	}
	if in.IsMandatory != nil {
		e.IsMandatory = *in.IsMandatory
	}

	const query = `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := execAffected(ctx, r.executor(ctx), query,
		e.ID, e.Title, e.Description, e.EventType, e.StartDate, e.EndDate, e.IsMandatory, e.CreatedBy); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresStore) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	e, err := r.GetEvent(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	e.Apply(patch)
	e.StartDate = models.Stamp(e.StartDate)
	e.EndDate = models.StampPtr(e.EndDate)

	const query = `
		UPDATE events
		SET title = $2, description = $3, event_type = $4, start_date = $5, end_date = $6, is_mandatory = $7
		WHERE id = $1
	`
	affected, err := execAffected(ctx, r.executor(ctx), query,
		e.ID, e.Title, e.Description, e.EventType, e.StartDate, e.EndDate, e.IsMandatory)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return e, nil
}

func (r *PostgresStore) DeleteEvent(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.executor(ctx), "events", id)
}
