package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"heyfarmer/config"
	"heyfarmer/internal/domain/constants"
	"heyfarmer/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "project ID and topic ID are required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, discardLogger())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, &discardPublisher{}, publisher)
			assert.NoError(t, publisher.Publish(context.Background(), &service.Event{Type: constants.EventTypeMessageCreated}))
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	_, err := encodeEvent(&service.Event{})
	assert.ErrorContains(t, err, "event type is required")

	event, err := service.NewEvent(constants.EventTypeMessageCreated, "", service.MessageCreatedPayload{MessageID: "m-1"})
	require.NoError(t, err)

	msg, err := encodeEvent(event.WithOrderingKey("conv-1"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{AttrEventType: constants.EventTypeMessageCreated}, msg.attributes)
	assert.Equal(t, "conv-1", msg.orderingKey)
	assert.NotContains(t, string(msg.data), "conv-1")
}

func TestLocalHTTPPublisher_PushEnvelope(t *testing.T) {
	var received PushMessage
	var requestIDHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event, err := service.NewEvent(constants.EventTypeMessageCreated, "req-42", service.MessageCreatedPayload{MessageID: "m-1"})
	require.NoError(t, err)

	require.NoError(t, NewLocalHTTPPublisher(server.URL, discardLogger()).Publish(context.Background(), event.WithOrderingKey("conv-9")))

	assert.Equal(t, "req-42", requestIDHeader)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.EventTypeMessageCreated, received.Message.Attributes[AttrEventType])
	assert.Equal(t, "req-42", received.Message.Attributes[AttrRequestID])
	assert.Equal(t, "conv-9", received.Message.OrderingKey)
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, constants.EventTypeMessageCreated, decoded.Type)
	assert.JSONEq(t, `{"message_id":"m-1","conversation_id":"","sender_id":"","sender_name":"","recipient_id":"","preview":""}`, string(decoded.Payload))
}

func TestLocalHTTPPublisher_Status(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr string
	}{
		{name: "accepted", status: http.StatusOK},
		{name: "worker asks for a retry", status: http.StatusServiceUnavailable, wantErr: "non-success status: 503"},
		{name: "rejected", status: http.StatusBadRequest, wantErr: "non-success status: 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				attempts.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := NewLocalHTTPPublisher(server.URL, discardLogger()).Publish(context.Background(), &service.Event{Type: constants.EventTypeMessageCreated})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, int32(1), attempts.Load())
		})
	}
}

func TestLocalHTTPPublisher_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	err := NewLocalHTTPPublisher(endpoint, discardLogger()).Publish(context.Background(), &service.Event{Type: constants.EventTypeMessageCreated})

	assert.ErrorContains(t, err, "failed to deliver message.created event")
}
