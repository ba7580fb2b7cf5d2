package services

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

// GalleryService manages gallery media.
type GalleryService struct {
	gallery storage.GalleryStore
	pub     *Publisher
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(gallery storage.GalleryStore, pub *Publisher) *GalleryService {
	return &GalleryService{gallery: gallery, pub: pub}
}

// Get returns the gallery item by id, or ErrNotFound.
func (s *GalleryService) Get(ctx context.Context, id string) (*models.GalleryItem, error) {
	g, err := s.gallery.GetGalleryItem(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get gallery item", "id", id, "error", err)
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

// List returns all items, or only those of album when it is non-empty.
func (s *GalleryService) List(ctx context.Context, album string) ([]models.GalleryItem, error) {
	var (
		list []models.GalleryItem
		err  error
	)
	if album == "" {
		list, err = s.gallery.GetAllGalleryItems(ctx)
	} else {
		list, err = s.gallery.GetGalleryItemsByAlbum(ctx, album)
	}
	if err != nil {
		logger.Log.Errorw("failed to list gallery items", "album", album, "error", err)
		return nil, err
	}
	return list, nil
}

// Create stores a gallery item. The store puts it in the general album when none is given.
func (s *GalleryService) Create(ctx context.Context, in models.NewGalleryItem) (*models.GalleryItem, error) {
	g, err := s.gallery.CreateGalleryItem(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create gallery item", "error", err)
		return nil, err
	}
	s.pub.Publish(ctx, EntityGalleryItem, models.OperationCreate, g.ID)
	return g, nil
}

// Update applies the patch to an existing item.
func (s *GalleryService) Update(ctx context.Context, id string, patch models.GalleryItemPatch) (*models.GalleryItem, error) {
	g, err := s.gallery.UpdateGalleryItem(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update gallery item", "id", id, "error", err)
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}
	s.pub.Publish(ctx, EntityGalleryItem, models.OperationUpdate, id)
	return g, nil
}

// Delete removes the gallery item.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	return deleteAndPublish(ctx, s.pub, EntityGalleryItem, id, s.gallery.DeleteGalleryItem)
}
