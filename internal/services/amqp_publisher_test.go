package services_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"userdir/internal/models"
	"userdir/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMessagePublisher is a mock implementation of services.MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) Publish(routingKey string, body []byte, messageID string) error {
	args := m.Called(routingKey, body, messageID)
	return args.Error(0)
}

func TestAMQPEventPublisher_PublishUserEvent(t *testing.T) {
	client := new(MockMessagePublisher)
	publisher := services.NewAMQPEventPublisher(client)

	event := services.UserEvent{
		Type:       services.EventUserCreated,
		UserID:     3,
		User:       &models.User{ID: 3, FirstName: "Anna"},
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	var captured []byte
	client.On("Publish", services.EventUserCreated, mock.Anything, mock.MatchedBy(func(id string) bool {
		_, err := uuid.Parse(id)
		return err == nil
	})).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]byte)
	}).Return(nil).Once()

	require.NoError(t, publisher.PublishUserEvent(event))
	client.AssertExpectations(t)

	decoded, err := services.DecodeUserEvent(captured)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(captured, &raw))
	assert.Equal(t, "user.created", raw["type"])
	assert.Equal(t, 3.0, raw["userId"])
}

func TestAMQPEventPublisher_PublishFailure(t *testing.T) {
	client := new(MockMessagePublisher)
	publisher := services.NewAMQPEventPublisher(client)

	client.On("Publish", services.EventUserDeleted, mock.Anything, mock.Anything).Return(errors.New("channel closed")).Once()

	err := publisher.PublishUserEvent(services.UserEvent{Type: services.EventUserDeleted, UserID: 8})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
	assert.Contains(t, err.Error(), "user 8")
}

func TestDecodeUserEvent_Malformed(t *testing.T) {
	_, err := services.DecodeUserEvent([]byte("{"))
	assert.Error(t, err)
}
