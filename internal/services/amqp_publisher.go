package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// MessagePublisher is the subset of the RabbitMQ client used to emit events.
type MessagePublisher interface {
	Publish(routingKey string, body []byte, messageID string) error
}

// AMQPEventPublisher encodes user events as JSON and routes them by event type.
type AMQPEventPublisher struct {
	client MessagePublisher
}

// NewAMQPEventPublisher creates an EventPublisher on top of a message client.
func NewAMQPEventPublisher(client MessagePublisher) *AMQPEventPublisher {
	return &AMQPEventPublisher{client: client}
}

// PublishUserEvent implements EventPublisher.
func (p *AMQPEventPublisher) PublishUserEvent(event UserEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}
	if err := p.client.Publish(event.Type, body, uuid.NewString()); err != nil {
		return fmt.Errorf("failed to publish %s event for user %d: %w", event.Type, event.UserID, err)
	}
	return nil
}

// DecodeUserEvent parses a message body produced by AMQPEventPublisher.
func DecodeUserEvent(body []byte) (UserEvent, error) {
	var event UserEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return UserEvent{}, fmt.Errorf("malformed user event: %w", err)
	}
	return event, nil
}
