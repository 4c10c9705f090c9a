// Package handler contains the Pub/Sub push endpoint of the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"heyfarmer/config"
	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/constants"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/service"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const attrRequestID = "request_id"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks a failure that Pub/Sub should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed OIDC token for an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns queued domain events into notification work.
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	notifications  usecase.NotificationUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Notifications usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified
// when events come from Google Pub/Sub outside local development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		notifications:  params.Notifications,
		logger:         params.Logger,
	}
}

// HandlePush answers 200 when the event is done or can never succeed, 503 when
// Pub/Sub should retry, 400 for an undecodable envelope and 401 for a bad push token.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_type", event.Type),
		slog.String("pubsub_message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.dispatch(ctx, &event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process event",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed")

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) dispatch(ctx context.Context, event *service.Event) error {
	switch event.Type {
	case constants.EventTypeMessageCreated:
		var payload service.MessageCreatedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return errors.Wrap(err, "decode message.created payload")
		}

		return classify(h.notifications.NotifyMessageCreated(ctx, &payload))
	case constants.EventTypePasswordRecoveryRequested:
		var payload service.PasswordRecoveryPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return errors.Wrap(err, "decode password recovery payload")
		}

		return classify(h.notifications.NotifyPasswordRecovery(ctx, &payload))
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Ignoring unknown event type")

		return nil
	}
}

// classify treats client-side domain errors as permanent and everything else as retryable.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return err
	}

	return newRetryableError(err)
}

// extractRequestID prefers message attributes, then the event, then the
// inbound request, and finally mints a new id.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.Event) string {
	if requestID := pushMsg.Message.Attributes[attrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests.
// The expected audience is the push endpoint URL.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil && req.Header.Get("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
