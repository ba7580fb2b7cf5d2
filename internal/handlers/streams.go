package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// StreamManager defines the operations used by the live stream routes.
type StreamManager interface {
	Get(ctx context.Context, id string) (*models.LiveStream, error)
	List(ctx context.Context) ([]models.LiveStream, error)
	Active(ctx context.Context) ([]models.LiveStream, error)
	Create(ctx context.Context, in models.NewLiveStream) (*models.LiveStream, error)
	Update(ctx context.Context, id string, patch models.LiveStreamPatch) (*models.LiveStream, error)
	Delete(ctx context.Context, id string) error
}

// NewListStreamsHandler returns an HTTP handler listing all live streams.
// @Summary List live streams
// @Tags live-streams
// @Produce json
// @Success 200 {array} models.LiveStream
// @Router /live-streams [get]
func NewListStreamsHandler(svc StreamManager) http.HandlerFunc {
	return listAll("Live stream", svc.List)
}

// NewActiveStreamsHandler returns an HTTP handler listing active live streams.
// @Summary List active live streams
// @Tags live-streams
// @Produce json
// @Success 200 {array} models.LiveStream
// @Router /live-streams/active [get]
func NewActiveStreamsHandler(svc StreamManager) http.HandlerFunc {
	return listAll("Live stream", svc.Active)
}

// NewGetStreamHandler returns an HTTP handler that fetches one live stream.
// @Summary Get live stream
// @Tags live-streams
// @Produce json
// @Param id path string true "Live stream ID"
// @Success 200 {object} models.LiveStream
// @Failure 404 {object} handlers.ErrorResponse "Live stream not found"
// @Router /live-streams/{id} [get]
func NewGetStreamHandler(svc StreamManager) http.HandlerFunc {
	return getByID("Live stream", svc.Get)
}

// NewCreateStreamHandler returns an HTTP handler that announces a live stream.
// @Summary Create live stream
// @Tags live-streams
// @Accept json
// @Produce json
// @Param stream body models.NewLiveStream true "Live stream"
// @Success 201 {object} models.LiveStream
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /live-streams [post]
func NewCreateStreamHandler(svc StreamManager) http.HandlerFunc {
	return create("Live stream", svc.Create)
}

// NewUpdateStreamHandler returns an HTTP handler that partially updates a live stream.
// @Summary Update live stream
// @Tags live-streams
// @Accept json
// @Produce json
// @Param id path string true "Live stream ID"
// @Param patch body models.LiveStreamPatch true "Fields to change"
// @Success 200 {object} models.LiveStream
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Live stream not found"
// @Router /live-streams/{id} [patch]
func NewUpdateStreamHandler(svc StreamManager) http.HandlerFunc {
	return update("Live stream", svc.Update)
}

// NewDeleteStreamHandler returns an HTTP handler that deletes a live stream.
// @Summary Delete live stream
// @Tags live-streams
// @Produce json
// @Param id path string true "Live stream ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Live stream not found"
// @Router /live-streams/{id} [delete]
func NewDeleteStreamHandler(svc StreamManager) http.HandlerFunc {
	return deleteByID("Live stream", svc.Delete)
}
