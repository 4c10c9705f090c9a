package notification

import (
	"context"
	"log/slog"
	"testing"

	"heyfarmer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationService_FallsBackToLogOnly(t *testing.T) {
	svc, err := NewNotificationService(context.Background(), &config.Config{}, slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &logOnlyService{}, svc)

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "New message", "hi", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
}
