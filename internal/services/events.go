package services

import (
	"time"

	"userdir/internal/models"
)

// Routing keys for user events.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// UserEvent describes a completed mutation of the collection.
type UserEvent struct {
	Type       string       `json:"type"`
	UserID     int          `json:"userId"`
	User       *models.User `json:"user,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
}

// EventPublisher delivers user events to interested consumers.
type EventPublisher interface {
	PublishUserEvent(event UserEvent) error
}
