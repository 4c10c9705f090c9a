package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"heyfarmer/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/heyfarmer-events"

// PushMessage is the JSON envelope Pub/Sub delivers to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher posts push envelopes straight to the worker so
// development needs no emulator. Each event is delivered once.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.Event) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var envelope PushMessage
	envelope.Subscription = localSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	envelope.Message.OrderingKey = msg.orderingKey

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	status, err := p.deliver(ctx, body, event.RequestID)
	if err != nil {
		return errors.Wrapf(err, "failed to deliver %s event", event.Type)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", status)
	}

	p.logger.DebugContext(ctx, "Event published",
		slog.String("provider", "local"),
		slog.String("event_type", event.Type),
	)

	return nil
}

func (p *localHTTPPublisher) deliver(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
