package memory

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

func (s *Store) GetGalleryItem(ctx context.Context, id string) (*models.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, _ := s.gallery.get(id)
	return g, nil
}

func (s *Store) GetAllGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.gallery.filter(nil), nil
}

func (s *Store) GetGalleryItemsByAlbum(ctx context.Context, album string) ([]models.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.gallery.filter(func(g *models.GalleryItem) bool { return g.Album == album }), nil
}

// CreateGalleryItem stores an item uploaded now. A missing album defaults to "general".
func (s *Store) CreateGalleryItem(ctx context.Context, in models.NewGalleryItem) (*models.GalleryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := models.GalleryItem{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		URL:         in.URL,
		Album:       models.DefaultAlbum,
		UploadedBy:  in.UploadedBy,
		UploadedAt:  s.now(),
	}
	if in.Album != nil {
		g.Album = *in.Album
	}
	return s.gallery.put(g.ID, g), nil
}

func (s *Store) UpdateGalleryItem(ctx context.Context, id string, patch models.GalleryItemPatch) (*models.GalleryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.gallery.get(id)
	if !ok {
		return nil, nil
	}
	g.Apply(patch)
	return s.gallery.put(id, *g), nil
}

func (s *Store) DeleteGalleryItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gallery.remove(id), nil
}
