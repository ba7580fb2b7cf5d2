package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/segmentio/kafka-go"
)

// Entity names used on the change feed
const (
	EntityUser        = "user"
	EntityAthlete     = "athlete"
	EntityExercise    = "exercise"
	EntitySession     = "training_session"
	EntityEvent       = "event"
	EntityGalleryItem = "gallery_item"
	EntityBestOfWeek  = "best_of_week"
	EntityLiveStream  = "live_stream"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// Publisher emits change events for successful writes.
// A nil Publisher, or one without a writer, drops every event.
type Publisher struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewPublisher creates a Publisher. writer may be nil.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer, now: time.Now}
}

// Publish sends a change event. Failures are logged and never returned.
func (p *Publisher) Publish(ctx context.Context, entity, operation, entityID string) {
	if p == nil || p.writer == nil {
		return
	}

	evt := models.ChangeEvent{
		EventID:   uuid.NewString(),
		Entity:    entity,
		Operation: operation,
		EntityID:  entityID,
		Timestamp: p.now().Unix(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal change event", "entity", entity, "entity_id", entityID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entityID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish change event", "entity", entity, "entity_id", entityID, "error", err)
		return
	}
	logger.Log.Infow("change event published", "entity", entity, "operation", operation, "entity_id", entityID)
}
