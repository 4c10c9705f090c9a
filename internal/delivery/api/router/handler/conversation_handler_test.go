package handler

import (
	"net/http"
	"testing"
	"time"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	mockUsecase "heyfarmer/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConversationTestServer(t *testing.T) (*testServer, *mockUsecase.MockMessagingUsecase) {
	srv := newTestServer(t)
	messaging := mockUsecase.NewMockMessagingUsecase(t)
	h := NewConversationHandler(ConversationHandlerParams{MessagingUC: messaging})

	g := srv.e.Group("/conversations", srv.auth.Authenticate)
	g.GET("", h.List)
	g.GET("/:id/messages", h.Messages)
	g.POST("/:id/messages", h.Send)
	g.POST("/:id/read", h.MarkRead)
	g.GET("/:id/typing", h.Typing)
	g.POST("/:id/typing", h.StartTyping)

	return srv, messaging
}

func TestConversationHandler_RequiresAuth(t *testing.T) {
	srv, _ := newConversationTestServer(t)

	rec := srv.do(http.MethodGet, "/conversations", "", false)

	requireErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHENTICATED")
}

func TestConversationHandler_List(t *testing.T) {
	srv, messaging := newConversationTestServer(t)
	other := uuid.New()

	messaging.EXPECT().ListConversations(mock.Anything, srv.viewer).Return([]*entity.ConversationSummary{
		{
			Conversation: &entity.Conversation{ID: uuid.New(), ParticipantLow: srv.viewer, ParticipantHigh: other, LastMessage: "See you Saturday"},
			Counterpart:  &entity.Profile{ID: other, Name: "Rosa"},
			UnreadCount:  2,
		},
	}, nil)

	rec := srv.do(http.MethodGet, "/conversations", "", true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	views := decodeData[[]map[string]any](t, rec)
	require.Len(t, views, 1)
	assert.Equal(t, "See you Saturday", views[0]["last_message"])
	assert.EqualValues(t, 2, views[0]["unread_count"])
}

func TestConversationHandler_MessagesSince(t *testing.T) {
	srv, messaging := newConversationTestServer(t)
	conversationID := uuid.New()
	since := time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC)

	messaging.EXPECT().
		GetMessages(mock.Anything, srv.viewer, conversationID, mock.MatchedBy(func(ts *time.Time) bool {
			return ts != nil && ts.Equal(since)
		})).
		Return([]*entity.Message{{ID: uuid.New(), ConversationID: conversationID, Content: "hello"}}, nil)

	rec := srv.do(http.MethodGet, "/conversations/"+conversationID.String()+"/messages?since=2026-05-01T12:30:00Z", "", true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decodeData[[]map[string]any](t, rec), 1)
}

func TestConversationHandler_MessagesWithoutSince(t *testing.T) {
	srv, messaging := newConversationTestServer(t)
	conversationID := uuid.New()

	messaging.EXPECT().GetMessages(mock.Anything, srv.viewer, conversationID, (*time.Time)(nil)).Return([]*entity.Message{}, nil)

	rec := srv.do(http.MethodGet, "/conversations/"+conversationID.String()+"/messages", "", true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestConversationHandler_MessagesBadSince(t *testing.T) {
	srv, _ := newConversationTestServer(t)

	rec := srv.do(http.MethodGet, "/conversations/"+uuid.NewString()+"/messages?since=yesterday", "", true)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestConversationHandler_NotParticipant(t *testing.T) {
	srv, messaging := newConversationTestServer(t)
	conversationID := uuid.New()

	messaging.EXPECT().GetMessages(mock.Anything, srv.viewer, conversationID, (*time.Time)(nil)).Return(nil, domainerrors.ErrNotParticipant)

	rec := srv.do(http.MethodGet, "/conversations/"+conversationID.String()+"/messages", "", true)

	requireErrorCode(t, rec, http.StatusForbidden, "NOT_PARTICIPANT")
}

func TestConversationHandler_Send(t *testing.T) {
	srv, messaging := newConversationTestServer(t)
	conversationID := uuid.New()

	messaging.EXPECT().SendMessage(mock.Anything, srv.viewer, conversationID, "Still have eggs?").
		Return(&entity.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: srv.viewer, Content: "Still have eggs?"}, nil)

	rec := srv.do(http.MethodPost, "/conversations/"+conversationID.String()+"/messages", `{"content":"Still have eggs?"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestConversationHandler_SendEmpty(t *testing.T) {
	srv, _ := newConversationTestServer(t)

	rec := srv.do(http.MethodPost, "/conversations/"+uuid.NewString()+"/messages", `{"content":""}`, true)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestConversationHandler_MarkRead(t *testing.T) {
	srv, messaging := newConversationTestServer(t)
	conversationID := uuid.New()

	messaging.EXPECT().MarkRead(mock.Anything, srv.viewer, conversationID).Return(nil)

	rec := srv.do(http.MethodPost, "/conversations/"+conversationID.String()+"/read", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestConversationHandler_Typing(t *testing.T) {
	srv, messaging := newConversationTestServer(t)
	conversationID, other := uuid.New(), uuid.New()

	messaging.EXPECT().SetTyping(mock.Anything, srv.viewer, conversationID).Return(nil)
	messaging.EXPECT().ListTyping(mock.Anything, srv.viewer, conversationID).Return([]uuid.UUID{other}, nil)

	rec := srv.do(http.MethodPost, "/conversations/"+conversationID.String()+"/typing", "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(http.MethodGet, "/conversations/"+conversationID.String()+"/typing", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []uuid.UUID{other}, decodeData[TypingView](t, rec).UserIDs)
}
