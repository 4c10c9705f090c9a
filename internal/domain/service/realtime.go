package service

import (
	"context"
	"time"

	"heyfarmer/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageBroadcaster fans new messages out to live subscribers of a conversation.
type MessageBroadcaster interface {
	// Broadcast delivers the message to subscribers of its conversation without blocking on slow subscribers.
	Broadcast(message *entity.Message)
}

// TypingStore tracks short-lived typing indicators per conversation.
type TypingStore interface {
	// SetTyping marks userID as typing in the conversation for ttl.
	SetTyping(ctx context.Context, conversationID, userID uuid.UUID, ttl time.Duration) error

	// ListTyping returns the users currently typing in the conversation.
	ListTyping(ctx context.Context, conversationID uuid.UUID) ([]uuid.UUID, error)
}
