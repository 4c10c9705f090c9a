package service

import (
	"context"
)

// NotificationService sends push notifications to device tokens.
type NotificationService interface {
	// SendBatchNotification sends one notification to up to 500 tokens.
	// invalidTokens lists tokens the provider reported as unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
