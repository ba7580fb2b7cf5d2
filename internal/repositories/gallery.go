package repositories

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

const galleryColumns = `id, title, description, type, url, album, uploaded_by, uploaded_at`

func (r *PostgresStore) GetGalleryItem(ctx context.Context, id string) (*models.GalleryItem, error) {
	const query = `SELECT ` + galleryColumns + ` FROM gallery_items WHERE id = $1`
	return getOne[models.GalleryItem](ctx, r.executor(ctx), query, id)
}

func (r *PostgresStore) GetAllGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	const query = `SELECT ` + galleryColumns + ` FROM gallery_items`
	return selectAll[models.GalleryItem](ctx, r.executor(ctx), query)
}

func (r *PostgresStore) GetGalleryItemsByAlbum(ctx context.Context, album string) ([]models.GalleryItem, error) {
	const query = `SELECT ` + galleryColumns + ` FROM gallery_items WHERE album = $1`
	return selectAll[models.GalleryItem](ctx, r.executor(ctx), query, album)
}

func (r *PostgresStore) CreateGalleryItem(ctx context.Context, in models.NewGalleryItem) (*models.GalleryItem, error) {
	g := models.GalleryItem{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		URL:         in.URL,
		Album:       models.DefaultAlbum,
		UploadedBy:  in.UploadedBy,
		UploadedAt:  models.Stamp(r.now().UTC()),
	}
	if in.Album != nil {
		g.Album = *in.Album
	}

	const query = `
		INSERT INTO gallery_items (` + galleryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := execAffected(ctx, r.executor(ctx), query,
		g.ID, g.Title, g.Description, g.Type, g.URL, g.Album, g.UploadedBy, g.UploadedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PostgresStore) UpdateGalleryItem(ctx context.Context, id string, patch models.GalleryItemPatch) (*models.GalleryItem, error) {
	g, err := r.GetGalleryItem(ctx, id)
	if err != nil || g == nil {
		return nil, err
	}
	g.Apply(patch)

	const query = `
		UPDATE gallery_items
		SET title = $2, description = $3, type = $4, url = $5, album = $6
		WHERE id = $1
	`
	affected, err := execAffected(ctx, r.executor(ctx), query, g.ID, g.Title, g.Description, g.Type, g.URL, g.Album)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return g, nil
}

func (r *PostgresStore) DeleteGalleryItem(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.executor(ctx), "gallery_items", id)
}
