package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"heyfarmer/config"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/infra/realtime"
	mockSvc "heyfarmer/internal/mocks/service"
	mockUsecase "heyfarmer/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type realtimeFixture struct {
	srv       *testServer
	http      *httptest.Server
	hub       *realtime.Hub
	messaging *mockUsecase.MockMessagingUsecase
}

func newRealtimeFixture(t *testing.T) *realtimeFixture {
	srv := newTestServer(t)
	messaging := mockUsecase.NewMockMessagingUsecase(t)
	metrics := mockSvc.NewMockMarketplaceMetrics(t)
	metrics.EXPECT().SubscriberDelta(mock.Anything).Return().Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := realtime.NewHub(metrics, logger)
	cfg := &config.Config{}
	cfg.HTTP.AllowOrigins = []string{"https://heyfarmer.example"}
	h := NewRealtimeHandler(RealtimeHandlerParams{
		MessagingUC: messaging,
		Hub:         hub,
		Config:      cfg,
		Logger:      logger,
	})
	srv.e.GET("/realtime/conversations/:id", h.Subscribe, srv.auth.AuthenticateUpgrade)

	httpSrv := httptest.NewServer(srv.e)
	t.Cleanup(httpSrv.Close)

	return &realtimeFixture{srv: srv, http: httpSrv, hub: hub, messaging: messaging}
}

func (f *realtimeFixture) dial(conversationID uuid.UUID, query string, origin string) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/realtime/conversations/" + conversationID.String() +
		"?access_token=" + testToken + query
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}

	return websocket.DefaultDialer.Dial(url, header)
}

// readFrame returns the next frame of type want, skipping others.
func readFrame(t *testing.T, conn *websocket.Conn, want string) RealtimeFrame {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var frame RealtimeFrame
		require.NoError(t, conn.ReadJSON(&frame))
		if frame.Type == want {
			return frame
		}
	}
}

func TestRealtimeHandler_ReplaysThenStreams(t *testing.T) {
	f := newRealtimeFixture(t)
	viewer := f.srv.viewer
	other := uuid.New()
	conversationID := uuid.New()
	conv := &entity.Conversation{ID: conversationID, ParticipantLow: viewer, ParticipantHigh: other}

	replayed := &entity.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: other, Content: "missed this"}
	live := &entity.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: other, Content: "and this"}

	f.messaging.EXPECT().Authorize(mock.Anything, viewer, conversationID).Return(conv, nil)
	f.messaging.EXPECT().
		GetMessages(mock.Anything, viewer, conversationID, mock.AnythingOfType("*time.Time")).
		Return([]*entity.Message{replayed}, nil)
	f.messaging.EXPECT().ListTyping(mock.Anything, viewer, conversationID).Return([]uuid.UUID{other}, nil).Maybe()

	typed := make(chan struct{})
	f.messaging.EXPECT().SetTyping(mock.Anything, viewer, conversationID).
		RunAndReturn(func(_ context.Context, _, _ uuid.UUID) error {
			close(typed)

			return nil
		}).Once()

	conn, _, err := f.dial(conversationID, "&since=2026-05-01T00:00:00Z", "")
	require.NoError(t, err)

	assert.Equal(t, replayed.ID, readFrame(t, conn, FrameMessage).Message.ID)

	// The replayed message arriving again live is skipped.
	f.hub.Broadcast(replayed)
	f.hub.Broadcast(live)
	assert.Equal(t, live.ID, readFrame(t, conn, FrameMessage).Message.ID)

	assert.Equal(t, []uuid.UUID{other}, readFrame(t, conn, FrameTyping).UserIDs)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "typing"}))
	select {
	case <-typed:
	case <-time.After(5 * time.Second):
		t.Fatal("typing frame was not forwarded")
	}

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return f.hub.Subscribers(conversationID) == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestRealtimeHandler_RejectsNonParticipant(t *testing.T) {
	f := newRealtimeFixture(t)
	conversationID := uuid.New()

	f.messaging.EXPECT().Authorize(mock.Anything, f.srv.viewer, conversationID).Return(nil, domainerrors.ErrNotParticipant)

	conn, resp, err := f.dial(conversationID, "", "")

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, f.hub.Subscribers(conversationID))
}

func TestRealtimeHandler_RejectsForeignOrigin(t *testing.T) {
	f := newRealtimeFixture(t)
	viewer := f.srv.viewer
	conversationID := uuid.New()

	f.messaging.EXPECT().Authorize(mock.Anything, viewer, conversationID).
		Return(&entity.Conversation{ID: conversationID, ParticipantLow: viewer, ParticipantHigh: uuid.New()}, nil)

	_, resp, err := f.dial(conversationID, "", "https://evil.example")

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Eventually(t, func() bool { return f.hub.Subscribers(conversationID) == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestOriginChecker(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "no origin header", allowed: []string{"https://a.example"}, want: true},
		{name: "empty list", origin: "https://b.example", want: true},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://b.example", want: true},
		{name: "listed", allowed: []string{"https://a.example"}, origin: "https://a.example", want: true},
		{name: "unlisted", allowed: []string{"https://a.example"}, origin: "https://b.example", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, originChecker(tt.allowed)(req))
		})
	}
}
