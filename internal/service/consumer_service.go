package service

import (
	"context"
	"encoding/json"
	"time"

	"notes-app-be/internal/dto"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// NoteEventBroadcaster pushes raw event payloads to live feed clients.
type NoteEventBroadcaster interface {
	Broadcast(data []byte)
}

// EventPublisher forwards events to an external bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	broadcaster    NoteEventBroadcaster
	eventPublisher EventPublisher
	logger         logger.ILogger
}

// NewConsumerService wires the note event topic to the live feed and,
// when eventPublisher is non-nil, to the external bus.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	broadcaster NoteEventBroadcaster,
	eventPublisher EventPublisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		broadcaster:    broadcaster,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks: delivery to the feed is best effort and a
// redelivered event would reach clients twice.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.NoteEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal note event", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err,
		})
		return
	}

	if cs.broadcaster != nil {
		cs.broadcaster.Broadcast(msg.Payload)
	}

	if cs.eventPublisher == nil {
		return
	}

	data := map[string]interface{}{"note_id": payload.NoteId.String()}
	occurredAt := time.Now().UTC()
	if payload.Note != nil {
		data["title"] = payload.Note.Title
		data["tags"] = payload.Note.Tags
		occurredAt = payload.Note.UpdatedAt
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := cs.eventPublisher.Publish(pubCtx, events.NewBaseEvent(payload.Type, data, occurredAt)); err != nil {
		cs.logger.Warn("ConsumerService", "Failed to forward note event", map[string]interface{}{
			"type":    payload.Type,
			"note_id": payload.NoteId,
			"error":   err,
		})
	}
}
