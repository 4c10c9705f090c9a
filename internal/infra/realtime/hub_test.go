package realtime

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"heyfarmer/internal/domain/entity"
	mockSvc "heyfarmer/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestHub(t *testing.T) (*Hub, *mockSvc.MockMarketplaceMetrics) {
	metrics := mockSvc.NewMockMarketplaceMetrics(t)

	return NewHub(metrics, slog.New(slog.NewTextHandler(io.Discard, nil))), metrics
}

func TestHub_DeliversOnlyToConversation(t *testing.T) {
	hub, metrics := newTestHub(t)
	metrics.EXPECT().SubscriberDelta(1).Times(2)
	metrics.EXPECT().SubscriberDelta(-1).Times(2)

	convA := uuid.New()
	convB := uuid.New()
	subA := hub.Subscribe(convA)
	subB := hub.Subscribe(convB)
	defer subA.Close()
	defer subB.Close()

	msg := &entity.Message{ID: uuid.New(), ConversationID: convA, Content: "hello"}
	hub.Broadcast(msg)

	select {
	case got := <-subA.C:
		assert.Equal(t, msg.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("subscriber of the conversation did not receive the message")
	}

	select {
	case got := <-subB.C:
		t.Fatalf("unexpected delivery to another conversation: %v", got.ID)
	default:
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub, metrics := newTestHub(t)
	metrics.EXPECT().SubscriberDelta(1).Once()
	metrics.EXPECT().SubscriberDelta(-1).Once()

	conv := uuid.New()
	sub := hub.Subscribe(conv)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range subscriberBuffer * 3 {
			hub.Broadcast(&entity.Message{ID: uuid.New(), ConversationID: conv})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full subscriber")
	}
	assert.Len(t, sub.C, subscriberBuffer)
}

func TestHub_CloseIsIdempotentAndClosesChannel(t *testing.T) {
	hub, metrics := newTestHub(t)
	metrics.EXPECT().SubscriberDelta(1).Once()
	metrics.EXPECT().SubscriberDelta(-1).Once()

	conv := uuid.New()
	sub := hub.Subscribe(conv)
	require.Equal(t, 1, hub.Subscribers(conv))

	sub.Close()
	sub.Close()

	_, ok := <-sub.C
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Subscribers(conv))

	hub.Broadcast(&entity.Message{ID: uuid.New(), ConversationID: conv})
}

func TestHub_ConcurrentSubscribeAndBroadcast(t *testing.T) {
	hub, metrics := newTestHub(t)
	metrics.EXPECT().SubscriberDelta(1).Times(20)
	metrics.EXPECT().SubscriberDelta(-1).Times(20)

	conv := uuid.New()
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := hub.Subscribe(conv)
			hub.Broadcast(&entity.Message{ID: uuid.New(), ConversationID: conv})
			sub.Close()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Subscribers(conv))
}
