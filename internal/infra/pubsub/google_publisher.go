package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"heyfarmer/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends events to a Cloud Pub/Sub topic. Events sharing an
// ordering key, such as the messages of one conversation, keep their order.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		topic:     topicPath,
		logger:    logger,
	}, nil
}

// Publish blocks until the server acknowledges the message.
func (p *googlePublisher) Publish(ctx context.Context, event *service.Event) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		if msg.orderingKey != "" {
			p.publisher.ResumePublish(msg.orderingKey)
		}

		return errors.Wrapf(err, "failed to publish %s event to %s", event.Type, p.topic)
	}

	p.logger.DebugContext(ctx, "Event published",
		slog.String("provider", "google"),
		slog.String("event_type", event.Type),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
