package usecase

import (
	"context"
	"time"

	"heyfarmer/internal/domain/entity"

	"github.com/google/uuid"
)

// MessagingUsecase defines inbox and conversation operations. Every
// operation on a conversation requires the viewer to be a participant.
type MessagingUsecase interface {
	ListConversations(ctx context.Context, viewerID uuid.UUID) ([]*entity.ConversationSummary, error)

	// Authorize returns the conversation when the viewer participates in it.
	Authorize(ctx context.Context, viewerID, conversationID uuid.UUID) (*entity.Conversation, error)

	// GetMessages returns messages oldest first, limited to those after since when it is set.
	GetMessages(ctx context.Context, viewerID, conversationID uuid.UUID, since *time.Time) ([]*entity.Message, error)
	SendMessage(ctx context.Context, viewerID, conversationID uuid.UUID, content string) (*entity.Message, error)
	MarkRead(ctx context.Context, viewerID, conversationID uuid.UUID) error

	SetTyping(ctx context.Context, viewerID, conversationID uuid.UUID) error
	// ListTyping returns the other participants currently typing.
	ListTyping(ctx context.Context, viewerID, conversationID uuid.UUID) ([]uuid.UUID, error)
}
