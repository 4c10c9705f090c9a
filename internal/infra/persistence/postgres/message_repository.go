package postgres

import (
	"context"
	"slices"
	"time"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultMessagePageLimit = 200

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a message and fills its generated fields.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := &model.MessageModel{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return conversationQueryError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListByConversation returns messages oldest first. Without since it is the
// newest page of the conversation; with since it is the page right after it.
func (repo *messageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID, since *time.Time, limit int) ([]*entity.Message, error) {
	if limit <= 0 {
		limit = defaultMessagePageLimit
	}

	tx := repo.db.WithContext(ctx).Where("conversation_id = ?", conversationID)
	if since != nil {
		tx = tx.Where("created_at > ?", *since).Order("created_at ASC").Order("id ASC")
	} else {
		tx = tx.Order("created_at DESC").Order("id DESC")
	}

	var messageModels []*model.MessageModel
	if err := tx.Limit(limit).Find(&messageModels).Error; err != nil {
		return nil, conversationQueryError(err, "failed to list messages")
	}
	if since == nil {
		slices.Reverse(messageModels)
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, m := range messageModels {
		messages = append(messages, &entity.Message{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			Content:        m.Content,
			ReadAt:         m.ReadAt,
			CreatedAt:      m.CreatedAt,
		})
	}

	return messages, nil
}
