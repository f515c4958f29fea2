package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishActivity publishes a student activity event. Publishing is
// best-effort: a nil writer or a broker failure is logged and ignored so the
// request outcome never depends on Kafka.
func publishActivity(ctx context.Context, w KafkaWriter, userID int64, kind string, objectID int64) {
	if w == nil {
		return
	}

	event := models.ActivityEvent{
		EventID:    uuid.NewString(),
		UserID:     userID,
		Kind:       kind,
		ObjectID:   objectID,
		OccurredAt: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity event", "event_id", event.EventID, "kind", kind, "error", err)
		return
	}

	logger.Log.Infow("activity event published", "event_id", event.EventID, "kind", kind, "user_id", userID)
}
