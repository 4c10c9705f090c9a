package postgres

import (
	"context"
	"time"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// primary starts a fresh statement pinned to the write connection.
func (repo *conversationRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// GetOrCreateConversation resolves the conversation of an unordered pair.
// The pair upsert returns the existing id on conflict, so concurrent callers
// converge on one row.
func (repo *conversationRepository) GetOrCreateConversation(ctx context.Context, userA, userB uuid.UUID) (uuid.UUID, error) {
	if userA == userB {
		return uuid.Nil, domainerrors.ErrSelfContact
	}

	low, high := entity.CanonicalPair(userA, userB)
	convM := &model.ConversationModel{ParticipantLow: low, ParticipantHigh: high}

	if err := repo.primary(ctx).Omit(clause.Associations).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "participant_low"}, {Name: "participant_high"}},
			DoUpdates: clause.Assignments(map[string]any{"updated_at": gorm.Expr("conversations.updated_at")}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "id"}}},
	).Create(convM).Error; err != nil {
		return uuid.Nil, conversationQueryError(err, "failed to resolve conversation")
	}

	participants := []model.ParticipantModel{
		{ConversationID: convM.ID, UserID: low},
		{ConversationID: convM.ID, UserID: high},
	}
	if err := repo.primary(ctx).Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&participants).Error; err != nil {
		return uuid.Nil, conversationQueryError(err, "failed to add conversation participants")
	}

	return convM.ID, nil
}

// FindByID retrieves a conversation.
func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var convM model.ConversationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&convM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, conversationQueryError(err, "failed to find conversation")
	}

	return toConversationDomain(&convM), nil
}

// ListForUser returns the user's inbox, most recent activity first.
func (repo *conversationRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.ConversationSummary, error) {
	var participantModels []*model.ParticipantModel
	if err := repo.db.WithContext(ctx).
		Joins("Conversation").
		Where("conversation_participants.user_id = ?", userID).
		Order(`COALESCE("Conversation"."last_message_at", "Conversation"."created_at") DESC`).
		Find(&participantModels).Error; err != nil {
		return nil, conversationQueryError(err, "failed to list conversations")
	}

	counterpartIDs := make([]uuid.UUID, 0, len(participantModels))
	for _, p := range participantModels {
		if p.Conversation == nil {
			continue
		}
		counterpartIDs = append(counterpartIDs, toConversationDomain(p.Conversation).Counterpart(userID))
	}

	profiles, err := NewProfileRepository(repo.db).FindByIDs(ctx, counterpartIDs)
	if err != nil && !errors.Is(err, repository.ErrFeatureUnavailable) {
		return nil, err
	}

	summaries := make([]*entity.ConversationSummary, 0, len(participantModels))
	for _, p := range participantModels {
		if p.Conversation == nil {
			continue
		}
		conv := toConversationDomain(p.Conversation)
		summaries = append(summaries, &entity.ConversationSummary{
			Conversation: conv,
			Counterpart:  profiles[conv.Counterpart(userID)],
			UnreadCount:  p.UnreadCount,
		})
	}

	return summaries, nil
}

// UpdateSummary sets the rolling last message fields.
func (repo *conversationRepository) UpdateSummary(ctx context.Context, id uuid.UUID, lastMessage string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_message":    lastMessage,
			"last_message_at": at,
			"updated_at":      at,
		})
	if result.Error != nil {
		return conversationQueryError(result.Error, "failed to update conversation summary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// IncrementUnread bumps the unread counter of one participant.
func (repo *conversationRepository) IncrementUnread(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ParticipantModel{}).
		Where("conversation_id = ? AND user_id = ?", id, userID).
		UpdateColumn("unread_count", gorm.Expr("unread_count + 1"))
	if result.Error != nil {
		return conversationQueryError(result.Error, "failed to increment unread count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// MarkRead stamps read_at on messages sent to userID and zeroes its unread counter.
func (repo *conversationRepository) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	now := time.Now()
	conn := repo.db.WithContext(ctx)

	if err := conn.Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", id, userID).
		Update("read_at", now).Error; err != nil {
		return conversationQueryError(err, "failed to mark messages read")
	}

	if err := conn.Model(&model.ParticipantModel{}).
		Where("conversation_id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"unread_count": 0,
			"last_read_at": now,
		}).Error; err != nil {
		return conversationQueryError(err, "failed to reset unread count")
	}

	return nil
}

func conversationQueryError(err error, details string) error {
	if isUndefinedTable(err) {
		return repository.ErrFeatureUnavailable
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:              data.ID,
		ParticipantLow:  data.ParticipantLow,
		ParticipantHigh: data.ParticipantHigh,
		LastMessage:     data.LastMessage,
		LastMessageAt:   data.LastMessageAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
