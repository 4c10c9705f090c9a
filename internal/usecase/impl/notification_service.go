package impl

import (
	"context"
	"log/slog"

	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/constants"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/domain/service"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pushBatchSize is the FCM multicast limit.
const pushBatchSize = 500

const (
	defaultMessageTitle = "New message"
	recoveryTitle       = "Password reset requested"
	recoveryBody        = "Open the link to choose a new password."
)

type notificationService struct {
	deviceRepo   repository.DeviceRepository
	notification service.NotificationService
	logger       *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notification service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:   deviceRepo,
		notification: notification,
		logger:       logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyMessageCreated pushes the message preview to the recipient's devices.
func (s *notificationService) NotifyMessageCreated(ctx context.Context, payload *service.MessageCreatedPayload) error {
	recipientID, err := uuid.Parse(payload.RecipientID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid recipient id")
	}

	title := payload.SenderName
	if title == "" {
		title = defaultMessageTitle
	}
	data := map[string]string{
		"type":            constants.EventTypeMessageCreated,
		"conversation_id": payload.ConversationID,
		"message_id":      payload.MessageID,
	}

	return s.pushToUser(ctx, recipientID, title, payload.Preview, data)
}

// NotifyPasswordRecovery pushes the reset link to the user's devices.
func (s *notificationService) NotifyPasswordRecovery(ctx context.Context, payload *service.PasswordRecoveryPayload) error {
	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	data := map[string]string{
		"type":       constants.EventTypePasswordRecoveryRequested,
		"reset_url":  payload.ResetURL,
		"expires_at": payload.ExpiresAt,
	}

	return s.pushToUser(ctx, userID, recoveryTitle, recoveryBody, data)
}

func (s *notificationService) pushToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find active devices")
	}
	if len(devices) == 0 {
		s.log(ctx).Debug("No active devices, skipping push", slog.Any("userID", userID))

		return nil
	}

	var sent, failed int
	var invalid []string
	for _, batch := range tokenBatches(devices, pushBatchSize) {
		success, failure, invalidTokens, err := s.notification.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			return errors.Wrap(err, "failed to send push notification")
		}
		sent += success
		failed += failure
		invalid = append(invalid, invalidTokens...)
	}

	if len(invalid) > 0 {
		if err := s.deviceRepo.DeactivateByTokens(ctx, invalid); err != nil {
			logBestEffort(ctx, s.log(ctx), "Failed to deactivate invalid tokens", err, slog.Int("count", len(invalid)))
		}
	}
	s.log(ctx).Info("Push delivered",
		slog.Any("userID", userID),
		slog.Int("success", sent),
		slog.Int("failure", failed),
		slog.Int("invalid", len(invalid)),
	)

	return nil
}

// tokenBatches splits the device tokens into chunks of at most size.
func tokenBatches(devices []*entity.UserDevice, size int) [][]string {
	batches := make([][]string, 0, (len(devices)+size-1)/size)
	current := make([]string, 0, min(size, len(devices)))
	for _, device := range devices {
		if device.FCMToken == "" {
			continue
		}
		current = append(current, device.FCMToken)
		if len(current) == size {
			batches = append(batches, current)
			current = make([]string, 0, size)
		}
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}

	return batches
}
