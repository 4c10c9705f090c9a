package usecase

import (
	"context"

	"heyfarmer/internal/domain/service"
)

// NotificationUsecase turns queued domain events into push notifications.
type NotificationUsecase interface {
	// NotifyMessageCreated pushes a new message to the recipient's active
	// devices and deactivates tokens the provider rejected.
	NotifyMessageCreated(ctx context.Context, payload *service.MessageCreatedPayload) error

	// NotifyPasswordRecovery handles a password recovery request.
	NotifyPasswordRecovery(ctx context.Context, payload *service.PasswordRecoveryPayload) error
}
