package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// GalleryManager defines the media operations used by the gallery routes.
type GalleryManager interface {
	Get(ctx context.Context, id string) (*models.GalleryItem, error)
	List(ctx context.Context, album string) ([]models.GalleryItem, error)
	Create(ctx context.Context, in models.NewGalleryItem) (*models.GalleryItem, error)
	Update(ctx context.Context, id string, patch models.GalleryItemPatch) (*models.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

// NewListGalleryHandler returns an HTTP handler listing gallery items.
// @Summary List gallery items
// @Tags gallery
// @Produce json
// @Param album query string false "Album filter"
// @Success 200 {array} models.GalleryItem
// @Router /gallery [get]
func NewListGalleryHandler(svc GalleryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), r.URL.Query().Get("album"))
		if err != nil {
			writeServiceError(w, r, err, "Gallery item")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewGetGalleryItemHandler returns an HTTP handler that fetches one item.
// @Summary Get gallery item
// @Tags gallery
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} models.GalleryItem
// @Failure 404 {object} handlers.ErrorResponse "Gallery item not found"
// @Router /gallery/{id} [get]
func NewGetGalleryItemHandler(svc GalleryManager) http.HandlerFunc {
	return getByID("Gallery item", svc.Get)
}

// NewCreateGalleryItemHandler returns an HTTP handler that adds an item.
// @Summary Create gallery item
// @Description The album defaults to "general"
// @Tags gallery
// @Accept json
// @Produce json
// @Param item body models.NewGalleryItem true "Gallery item"
// @Success 201 {object} models.GalleryItem
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /gallery [post]
func NewCreateGalleryItemHandler(svc GalleryManager) http.HandlerFunc {
	return create("Gallery item", svc.Create)
}

// NewUpdateGalleryItemHandler returns an HTTP handler that partially updates an item.
// @Summary Update gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery item ID"
// @Param patch body models.GalleryItemPatch true "Fields to change"
// @Success 200 {object} models.GalleryItem
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Gallery item not found"
// @Router /gallery/{id} [patch]
func NewUpdateGalleryItemHandler(svc GalleryManager) http.HandlerFunc {
	return update("Gallery item", svc.Update)
}

// NewDeleteGalleryItemHandler returns an HTTP handler that deletes an item.
// @Summary Delete gallery item
// @Tags gallery
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Gallery item not found"
// @Router /gallery/{id} [delete]
func NewDeleteGalleryItemHandler(svc GalleryManager) http.HandlerFunc {
	return deleteByID("Gallery item", svc.Delete)
}
