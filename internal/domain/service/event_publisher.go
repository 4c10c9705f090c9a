package service

import (
	"context"
	"encoding/json"
)

// Event is an asynchronous domain event handed to the message queue.
type Event struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`

	// OrderingKey groups events that must reach the worker in publish order.
	OrderingKey string `json:"-"`
}

// MessageCreatedPayload is the payload of a message.created event.
type MessageCreatedPayload struct {
	MessageID      string `json:"message_id"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	SenderName     string `json:"sender_name"`
	RecipientID    string `json:"recipient_id"`
	Preview        string `json:"preview"`
}

// PasswordRecoveryPayload is the payload of a password_recovery.requested event.
type PasswordRecoveryPayload struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	ResetURL  string `json:"reset_url"`
	ExpiresAt string `json:"expires_at"`
}

// NewEvent marshals payload into an Event of the given type.
func NewEvent(eventType, requestID string, payload any) (*Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{Type: eventType, RequestID: requestID, Payload: raw}, nil
}

// WithOrderingKey sets the ordering key and returns the event.
func (e *Event) WithOrderingKey(key string) *Event {
	e.OrderingKey = key

	return e
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event for async processing
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
