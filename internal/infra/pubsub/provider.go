// Package pubsub publishes domain events for the push worker.
package pubsub

import (
	"context"
	"log/slog"

	"heyfarmer/config"
	"heyfarmer/internal/domain/constants"
	"heyfarmer/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher drops events. It backs deployments without a worker,
// where message delivery and the inbox still work but no push goes out.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) Publish(ctx context.Context, event *service.Event) error {
	p.logger.DebugContext(ctx, "Event dropped, no publisher configured",
		slog.String("event_type", event.Type),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for the configured provider and
// closes it when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing event publisher")

		return publisher.Close()
	}))

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Warn("Event publishing disabled, push notifications will not be sent")

		return &discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing events to the local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}
		logger.Info("Publishing events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
