package repository

import (
	"context"
	"time"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/errors"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a conversation does not exist.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository defines conversation persistence.
type ConversationRepository interface {
	// GetOrCreateConversation resolves the conversation of an unordered pair,
	// creating it and both participant rows when absent. Argument order does
	// not matter and concurrent callers receive the same id.
	GetOrCreateConversation(ctx context.Context, userA, userB uuid.UUID) (uuid.UUID, error)

	// FindByID retrieves a conversation.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// ListForUser returns the user's conversations, most recent activity first,
	// each with that user's unread counter.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.ConversationSummary, error)

	// UpdateSummary sets the rolling last message fields.
	UpdateSummary(ctx context.Context, id uuid.UUID, lastMessage string, at time.Time) error

	// IncrementUnread bumps the unread counter of one participant.
	IncrementUnread(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// MarkRead stamps read_at on messages sent to userID and zeroes its unread counter.
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

// MessageRepository defines message persistence.
type MessageRepository interface {
	// Create persists a message and fills its generated fields.
	Create(ctx context.Context, message *entity.Message) error

	// ListByConversation returns at most limit messages, oldest first. A nil
	// since selects the newest page; a non-nil since selects the messages
	// created strictly after it.
	ListByConversation(ctx context.Context, conversationID uuid.UUID, since *time.Time, limit int) ([]*entity.Message, error)
}
