package pubsub

import (
	"encoding/json"

	"heyfarmer/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every published message. The push worker reads
// the same keys back.
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
)

// wireMessage is an event encoded for transport.
type wireMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeEvent(event *service.Event) (*wireMessage, error) {
	if event == nil || event.Type == "" {
		return nil, errors.New("event type is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s event", event.Type)
	}

	attrs := map[string]string{AttrEventType: event.Type}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return &wireMessage{data: data, attributes: attrs, orderingKey: event.OrderingKey}, nil
}
