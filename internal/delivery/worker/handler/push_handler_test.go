package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heyfarmer/config"
	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/constants"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/service"
	mockUsecase "heyfarmer/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, env, provider string) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notifications := mockUsecase.NewMockNotificationUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	h := NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifications: notifications,
	})

	return h, notifications
}

func pushBody(t *testing.T, event *service.Event, attrs map[string]string) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/heyfarmer/subscriptions/worker"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func messageCreatedEvent(t *testing.T, requestID string) *service.Event {
	t.Helper()

	event, err := service.NewEvent(constants.EventTypeMessageCreated, requestID, &service.MessageCreatedPayload{
		MessageID:   "m1",
		RecipientID: "u2",
		Preview:     "Still have eggs?",
	})
	require.NoError(t, err)

	return event
}

func TestPushHandler_DispatchesMessageCreated(t *testing.T) {
	h, notifications := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	notifications.EXPECT().
		NotifyMessageCreated(mock.Anything, mock.AnythingOfType("*service.MessageCreatedPayload")).
		RunAndReturn(func(ctx context.Context, payload *service.MessageCreatedPayload) error {
			assert.Equal(t, "m1", payload.MessageID)
			assert.Equal(t, "Still have eggs?", payload.Preview)
			assert.Equal(t, "req-from-attrs", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := servePush(h, pushBody(t, messageCreatedEvent(t, "req-from-event"), map[string]string{"request_id": "req-from-attrs"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DispatchesPasswordRecovery(t *testing.T) {
	h, notifications := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)
	event, err := service.NewEvent(constants.EventTypePasswordRecoveryRequested, "req-1", &service.PasswordRecoveryPayload{
		Email:    "jo@example.com",
		ResetURL: "https://heyfarmer.example/reset?token=abc",
	})
	require.NoError(t, err)

	notifications.EXPECT().
		NotifyPasswordRecovery(mock.Anything, &service.PasswordRecoveryPayload{
			Email:    "jo@example.com",
			ResetURL: "https://heyfarmer.example/reset?token=abc",
		}).
		RunAndReturn(func(ctx context.Context, _ *service.PasswordRecoveryPayload) error {
			assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := servePush(h, pushBody(t, event, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		failure error
		want    int
	}{
		{name: "transient failure is retried", failure: errors.New("fcm unavailable"), want: http.StatusServiceUnavailable},
		{name: "server side domain error is retried", failure: domainerrors.ErrUserCreationFailed, want: http.StatusServiceUnavailable},
		{name: "client side domain error is dropped", failure: domainerrors.ErrValidationFailed, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)
			notifications.EXPECT().NotifyMessageCreated(mock.Anything, mock.Anything).Return(tt.failure)

			rec := servePush(h, pushBody(t, messageCreatedEvent(t, ""), nil), nil)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPushHandler_UnknownEventIsAcknowledged(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	rec := servePush(h, pushBody(t, &service.Event{Type: "listing.archived", Payload: json.RawMessage(`{}`)}, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadPayloadIsPermanent(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	rec := servePush(h, pushBody(t, &service.Event{Type: constants.EventTypeMessageCreated, Payload: json.RawMessage(`"not an object"`)}, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "envelope", body: `{"message":`},
		{name: "base64", body: `{"message":{"data":"%%%"}}`},
		{name: "event json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

			rec := servePush(h, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushToken(t *testing.T) {
	tests := []struct {
		name    string
		auth    string
		payload *idtoken.Payload
		err     error
		want    int
	}{
		{name: "missing token", want: http.StatusUnauthorized},
		{name: "rejected token", auth: "Bearer forged", err: errors.New("signature mismatch"), want: http.StatusUnauthorized},
		{name: "foreign issuer", auth: "Bearer token", payload: &idtoken.Payload{Issuer: "https://evil.example"}, want: http.StatusUnauthorized},
		{
			name:    "unverified email",
			auth:    "Bearer token",
			payload: &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			want:    http.StatusUnauthorized,
		},
		{name: "valid", auth: "Bearer token", payload: &idtoken.Payload{Issuer: "accounts.google.com"}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newTestPushHandler(t, constants.EnvProduction, constants.PubSubProviderGoogle)
			require.True(t, h.verifyPushAuth)
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.example/push", audience)

				return tt.payload, tt.err
			}
			if tt.want == http.StatusOK {
				notifications.EXPECT().NotifyMessageCreated(mock.Anything, mock.Anything).Return(nil)
			}

			header := http.Header{"X-Forwarded-Proto": {"https"}}
			if tt.auth != "" {
				header.Set("Authorization", tt.auth)
			}
			req := httptest.NewRequest(http.MethodPost, "https://worker.example/push", strings.NewReader(pushBody(t, messageCreatedEvent(t, ""), nil)))
			req.Header = header
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			_ = h.HandlePush(echo.New().NewContext(req, rec))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestNewPushHandler_SkipsVerificationLocally(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		want     bool
	}{
		{name: "google in production", env: constants.EnvProduction, provider: constants.PubSubProviderGoogle, want: true},
		{name: "google in develop", env: constants.EnvDevelop, provider: constants.PubSubProviderGoogle, want: false},
		{name: "local provider", env: constants.EnvProduction, provider: constants.PubSubProviderLocal, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, tt.env, tt.provider)

			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}
