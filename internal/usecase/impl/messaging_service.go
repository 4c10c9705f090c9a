package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"heyfarmer/config"
	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/constants"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/domain/service"
	"heyfarmer/internal/errors"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	maxMessageRunes  = 4000
	previewRunes     = 140
	defaultTypingTTL = 5 * time.Second
)

type messagingService struct {
	txManager        repository.TransactionManager
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	profileRepo      repository.ProfileRepository
	typing           service.TypingStore
	broadcaster      service.MessageBroadcaster
	publisher        service.EventPublisher
	metrics          service.MarketplaceMetrics
	pageLimit        int
	typingTTL        time.Duration
	logger           *slog.Logger
}

// MessagingServiceParams holds dependencies for MessagingService, injected by Fx.
type MessagingServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ConversationRepo repository.ConversationRepository
	MessageRepo      repository.MessageRepository
	ProfileRepo      repository.ProfileRepository
	Typing           service.TypingStore
	Broadcaster      service.MessageBroadcaster
	Publisher        service.EventPublisher
	Metrics          service.MarketplaceMetrics
	Config           *config.Config
	Logger           *slog.Logger
}

// NewMessagingService creates a new messaging service instance
func NewMessagingService(params MessagingServiceParams) usecase.MessagingUsecase {
	srv := &messagingService{
		txManager:        params.TxManager,
		conversationRepo: params.ConversationRepo,
		messageRepo:      params.MessageRepo,
		profileRepo:      params.ProfileRepo,
		typing:           params.Typing,
		broadcaster:      params.Broadcaster,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		typingTTL:        defaultTypingTTL,
		logger:           params.Logger,
	}
	if params.Config != nil && params.Config.Marketplace != nil {
		srv.pageLimit = params.Config.Marketplace.MessagePageLimit
		if params.Config.Marketplace.TypingTTL > 0 {
			srv.typingTTL = params.Config.Marketplace.TypingTTL
		}
	}

	return srv
}

func (srv *messagingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListConversations returns the viewer's inbox, most recent activity first.
// An unmigrated conversations table yields an empty inbox.
func (srv *messagingService) ListConversations(ctx context.Context, viewerID uuid.UUID) ([]*entity.ConversationSummary, error) {
	summaries, err := srv.conversationRepo.ListForUser(ctx, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			srv.log(ctx).Warn("Inbox unavailable", slog.Any("error", err))

			return []*entity.ConversationSummary{}, nil
		}

		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return summaries, nil
}

// Authorize returns the conversation when viewerID is one of its participants.
func (srv *messagingService) Authorize(ctx context.Context, viewerID, conversationID uuid.UUID) (*entity.Conversation, error) {
	conv, err := srv.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		if errors.IsAny(err, repository.ErrConversationNotFound, repository.ErrFeatureUnavailable) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}
	if !conv.HasParticipant(viewerID) {
		return nil, domainerrors.ErrNotParticipant
	}

	return conv, nil
}

// GetMessages returns the conversation's messages oldest first.
func (srv *messagingService) GetMessages(ctx context.Context, viewerID, conversationID uuid.UUID, since *time.Time) ([]*entity.Message, error) {
	if _, err := srv.Authorize(ctx, viewerID, conversationID); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.ListByConversation(ctx, conversationID, since, srv.pageLimit)
	if err != nil {
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			return []*entity.Message{}, nil
		}

		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// SendMessage persists a message with its conversation summary and the
// recipient's unread counter in one transaction, then fans it out. The
// realtime broadcast and the queued event are best effort.
func (srv *messagingService) SendMessage(ctx context.Context, viewerID, conversationID uuid.UUID, content string) (*entity.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is empty")
	}
	if utf8.RuneCountInString(content) > maxMessageRunes {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is too long")
	}

	conv, err := srv.Authorize(ctx, viewerID, conversationID)
	if err != nil {
		return nil, err
	}
	recipientID := conv.Counterpart(viewerID)

	message := &entity.Message{
		ConversationID: conv.ID,
		SenderID:       viewerID,
		Content:        content,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if createErr := repoFactory.MessageRepo().Create(ctx, message); createErr != nil {
			return errors.Wrap(createErr, "failed to create message")
		}

		convRepo := repoFactory.ConversationRepo()
		if updateErr := convRepo.UpdateSummary(ctx, conv.ID, preview(content), message.CreatedAt); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update conversation summary")
		}

		return convRepo.IncrementUnread(ctx, conv.ID, recipientID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send message", slog.Any("conversationID", conv.ID), slog.Any("error", err))
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to execute send message transaction")
	}

	srv.metrics.MessageSent()
	srv.broadcaster.Broadcast(message)
	srv.publishMessageCreated(ctx, message, recipientID)

	return message, nil
}

func (srv *messagingService) publishMessageCreated(ctx context.Context, message *entity.Message, recipientID uuid.UUID) {
	payload := &service.MessageCreatedPayload{
		MessageID:      message.ID.String(),
		ConversationID: message.ConversationID.String(),
		SenderID:       message.SenderID.String(),
		RecipientID:    recipientID.String(),
		Preview:        preview(message.Content),
	}
	if sender, err := srv.profileRepo.FindByID(ctx, message.SenderID); err == nil {
		payload.SenderName = sender.DisplayName()
	}

	event, err := service.NewEvent(constants.EventTypeMessageCreated, deliverycontext.GetRequestIDFromContext(ctx), payload)
	if err != nil {
		logBestEffort(ctx, srv.log(ctx), "Failed to build message event", err)

		return
	}
	if err := srv.publisher.Publish(ctx, event.WithOrderingKey(payload.ConversationID)); err != nil {
		logBestEffort(ctx, srv.log(ctx), "Failed to publish message event", err,
			slog.String("message_id", payload.MessageID),
		)
	}
}

// MarkRead stamps the viewer's incoming messages as read and clears their unread counter.
func (srv *messagingService) MarkRead(ctx context.Context, viewerID, conversationID uuid.UUID) error {
	if _, err := srv.Authorize(ctx, viewerID, conversationID); err != nil {
		return err
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ConversationRepo().MarkRead(ctx, conversationID, viewerID)
	}); err != nil {
		return errors.Wrap(err, "failed to mark messages as read")
	}

	return nil
}

// SetTyping marks the viewer as typing for the configured TTL.
func (srv *messagingService) SetTyping(ctx context.Context, viewerID, conversationID uuid.UUID) error {
	if _, err := srv.Authorize(ctx, viewerID, conversationID); err != nil {
		return err
	}

	if err := srv.typing.SetTyping(ctx, conversationID, viewerID, srv.typingTTL); err != nil {
		return errors.Wrap(err, "failed to set typing indicator")
	}

	return nil
}

// ListTyping returns the other participants typing right now.
func (srv *messagingService) ListTyping(ctx context.Context, viewerID, conversationID uuid.UUID) ([]uuid.UUID, error) {
	if _, err := srv.Authorize(ctx, viewerID, conversationID); err != nil {
		return nil, err
	}

	users, err := srv.typing.ListTyping(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list typing indicators")
	}

	others := make([]uuid.UUID, 0, len(users))
	for _, id := range users {
		if id != viewerID {
			others = append(others, id)
		}
	}

	return others, nil
}

// preview shortens content for the inbox summary and notifications.
func preview(content string) string {
	if utf8.RuneCountInString(content) <= previewRunes {
		return content
	}

	runes := []rune(content)

	return string(runes[:previewRunes-1]) + "…"
}
