package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"heyfarmer/internal/domain/constants"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/service"
	mockRepo "heyfarmer/internal/mocks/repository"
	mockSvc "heyfarmer/internal/mocks/service"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service      usecase.NotificationUsecase
	deviceRepo   *mockRepo.MockDeviceRepository
	notification *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notification := mockSvc.NewMockNotificationService(t)

	return notificationServiceFixtures{
		service:      NewNotificationService(deviceRepo, notification, slog.New(slog.NewTextHandler(io.Discard, nil))),
		deviceRepo:   deviceRepo,
		notification: notification,
	}
}

func TestNotificationService_NotifyMessageCreated(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipient := uuid.New()
	payload := &service.MessageCreatedPayload{
		MessageID:      uuid.NewString(),
		ConversationID: uuid.NewString(),
		RecipientID:    recipient.String(),
		SenderName:     "Sunny Acres",
		Preview:        "Are the eggs still available?",
	}
	devices := []*entity.UserDevice{{FCMToken: "good"}, {FCMToken: "stale"}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipient).Return(devices, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"good", "stale"}, "Sunny Acres", payload.Preview, map[string]string{
			"type":            constants.EventTypeMessageCreated,
			"conversation_id": payload.ConversationID,
			"message_id":      payload.MessageID,
		}).
		Return(1, 1, []string{"stale"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale"}).Return(nil)

	assert.NoError(t, fx.service.NotifyMessageCreated(ctx, payload))
}

func TestNotificationService_NotifyMessageCreated_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipient := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipient).Return([]*entity.UserDevice{}, nil)

	assert.NoError(t, fx.service.NotifyMessageCreated(ctx, &service.MessageCreatedPayload{RecipientID: recipient.String()}))
}

func TestNotificationService_NotifyMessageCreated_InvalidRecipient(t *testing.T) {
	fx := createTestNotificationService(t)

	err := fx.service.NotifyMessageCreated(context.Background(), &service.MessageCreatedPayload{RecipientID: "nope"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_NotifyPasswordRecovery(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	payload := &service.PasswordRecoveryPayload{
		UserID:    userID.String(),
		ResetURL:  "https://heyfarmer.example/reset-password?token=abc",
		ExpiresAt: "2026-10-14T10:00:00Z",
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return([]*entity.UserDevice{{FCMToken: "t1"}}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"t1"}, recoveryTitle, recoveryBody, mock.MatchedBy(func(data map[string]string) bool {
			return data["reset_url"] == payload.ResetURL
		})).
		Return(1, 0, nil, nil)

	assert.NoError(t, fx.service.NotifyPasswordRecovery(ctx, payload))
}

func TestNotificationService_SendFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return([]*entity.UserDevice{{FCMToken: "t1"}}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	err := fx.service.NotifyMessageCreated(ctx, &service.MessageCreatedPayload{RecipientID: userID.String()})

	assert.Error(t, err)
}

func TestTokenBatches(t *testing.T) {
	devices := make([]*entity.UserDevice, 0, 1203)
	for i := range 1203 {
		devices = append(devices, &entity.UserDevice{FCMToken: fmt.Sprintf("token-%d", i)})
	}
	devices = append(devices, &entity.UserDevice{})

	batches := tokenBatches(devices, pushBatchSize)

	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 500)
	assert.Len(t, batches[1], 500)
	assert.Len(t, batches[2], 203)
}
