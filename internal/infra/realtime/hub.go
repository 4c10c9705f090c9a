// Package realtime fans persisted messages out to live websocket subscribers.
package realtime

import (
	"log/slog"
	"sync"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/service"

	"github.com/google/uuid"
)

const subscriberBuffer = 16

// Subscription receives the messages of one conversation until it is closed.
type Subscription struct {
	C              <-chan *entity.Message
	ch             chan *entity.Message
	conversationID uuid.UUID
	hub            *Hub
	once           sync.Once
}

// Close detaches the subscription from its hub and closes C.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
	})
}

// Hub keeps the live subscribers of every conversation in memory.
type Hub struct {
	mu      sync.RWMutex
	subs    map[uuid.UUID]map[*Subscription]struct{}
	metrics service.MarketplaceMetrics
	logger  *slog.Logger
}

// NewHub is the constructor for Hub.
func NewHub(metrics service.MarketplaceMetrics, logger *slog.Logger) *Hub {
	return &Hub{
		subs:    make(map[uuid.UUID]map[*Subscription]struct{}),
		metrics: metrics,
		logger:  logger,
	}
}

// NewBroadcaster exposes hub as the domain MessageBroadcaster.
func NewBroadcaster(hub *Hub) service.MessageBroadcaster {
	return hub
}

// Subscribe registers a subscriber for the conversation.
func (h *Hub) Subscribe(conversationID uuid.UUID) *Subscription {
	ch := make(chan *entity.Message, subscriberBuffer)
	sub := &Subscription{C: ch, ch: ch, conversationID: conversationID, hub: h}

	h.mu.Lock()
	set, ok := h.subs[conversationID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[conversationID] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	h.metrics.SubscriberDelta(1)

	return sub
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	set := h.subs[sub.conversationID]
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.conversationID)
	}
	close(sub.ch)
	h.mu.Unlock()

	h.metrics.SubscriberDelta(-1)
}

// Broadcast delivers message to the subscribers of its conversation. A
// subscriber whose buffer is full misses the message and catches up through
// the since replay on reconnect.
func (h *Hub) Broadcast(message *entity.Message) {
	if message == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[message.ConversationID] {
		select {
		case sub.ch <- message:
		default:
			h.logger.Warn("Realtime subscriber is slow, dropping message",
				slog.String("conversation_id", message.ConversationID.String()),
				slog.String("message_id", message.ID.String()),
			)
		}
	}
}

// Subscribers returns the number of live subscribers of a conversation.
func (h *Hub) Subscribers(conversationID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[conversationID])
}
