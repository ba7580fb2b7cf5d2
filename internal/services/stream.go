package services

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

// StreamService manages live stream announcements.
type StreamService struct {
	streams storage.LiveStreamStore
	pub     *Publisher
}

// NewStreamService creates a new StreamService.
func NewStreamService(streams storage.LiveStreamStore, pub *Publisher) *StreamService {
	return &StreamService{streams: streams, pub: pub}
}

// Get returns the live stream by id, or ErrNotFound.
func (s *StreamService) Get(ctx context.Context, id string) (*models.LiveStream, error) {
	ls, err := s.streams.GetLiveStream(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get live stream", "id", id, "error", err)
		return nil, err
	}
	if ls == nil {
		return nil, ErrNotFound
	}
	return ls, nil
}

// List returns every live stream.
func (s *StreamService) List(ctx context.Context) ([]models.LiveStream, error) {
	list, err := s.streams.GetAllLiveStreams(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list live streams", "error", err)
		return nil, err
	}
	return list, nil
}

// Active returns the streams currently marked active.
func (s *StreamService) Active(ctx context.Context) ([]models.LiveStream, error) {
	list, err := s.streams.GetActiveLiveStreams(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active live streams", "error", err)
		return nil, err
	}
	return list, nil
}

// Create stores a live stream.
func (s *StreamService) Create(ctx context.Context, in models.NewLiveStream) (*models.LiveStream, error) {
	ls, err := s.streams.CreateLiveStream(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create live stream", "error", err)
		return nil, err
	}
	s.pub.Publish(ctx, EntityLiveStream, models.OperationCreate, ls.ID)
	return ls, nil
}

// Update applies the patch to an existing stream.
func (s *StreamService) Update(ctx context.Context, id string, patch models.LiveStreamPatch) (*models.LiveStream, error) {
	ls, err := s.streams.UpdateLiveStream(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update live stream", "id", id, "error", err)
		return nil, err
	}
	if ls == nil {
		return nil, ErrNotFound
	}
	s.pub.Publish(ctx, EntityLiveStream, models.OperationUpdate, id)
	return ls, nil
}

// Delete removes the live stream.
func (s *StreamService) Delete(ctx context.Context, id string) error {
	return deleteAndPublish(ctx, s.pub, EntityLiveStream, id, s.streams.DeleteLiveStream)
}
