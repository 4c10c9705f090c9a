package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"heyfarmer/config"
	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/response"
	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/infra/realtime"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = wsPongWait * 9 / 10
	wsMaxFrameBytes  = 4096
	typingPollPeriod = time.Second
)

// Frame types exchanged on the realtime socket.
const (
	FrameMessage = "message"
	FrameTyping  = "typing"
)

// RealtimeFrame is one server to client frame.
type RealtimeFrame struct {
	Type    string          `json:"type"`
	Message *entity.Message `json:"message,omitempty"`
	UserIDs []uuid.UUID     `json:"user_ids,omitempty"`
}

// clientFrame is one client to server frame. Only "typing" has an effect.
type clientFrame struct {
	Type string `json:"type"`
}

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	MessagingUC usecase.MessagingUsecase
	Hub         *realtime.Hub
	Config      *config.Config
	Logger      *slog.Logger
}

// RealtimeHandler streams a conversation's new messages and typing indicators over a websocket.
type RealtimeHandler struct {
	messagingUC usecase.MessagingUsecase
	hub         *realtime.Hub
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	var origins []string
	if params.Config != nil {
		origins = params.Config.HTTP.AllowOrigins
	}

	return &RealtimeHandler{
		messagingUC: params.MessagingUC,
		hub:         params.Hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(origins),
		},
		logger: params.Logger,
	}
}

// originChecker accepts requests without an Origin header, any origin when the
// list is empty or holds "*", and otherwise only listed origins.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 || slices.Contains(allowed, "*") {
			return true
		}

		return slices.Contains(allowed, origin)
	}
}

// Subscribe upgrades to a websocket once the viewer is known to participate.
// With ?since=<RFC3339> the messages created after that instant are replayed
// before live delivery starts.
func (h *RealtimeHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	since, err := parseSince(c.QueryParam("since"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.messagingUC.Authorize(ctx, userID, conversationID); err != nil {
		return response.HandleAppError(c, err)
	}

	// Subscribe before replaying so nothing sent in between is lost.
	sub := h.hub.Subscribe(conversationID)
	defer sub.Close()

	var backlog []*entity.Message
	if since != nil {
		if backlog, err = h.messagingUC.GetMessages(ctx, userID, conversationID, since); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		h.log(ctx).Warn("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	session := &realtimeSession{
		conn:           conn,
		messagingUC:    h.messagingUC,
		viewerID:       userID,
		conversationID: conversationID,
		logger:         h.log(ctx).With(slog.String("conversation_id", conversationID.String())),
	}
	session.run(ctx, sub, backlog)

	return nil
}

func (h *RealtimeHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

type realtimeSession struct {
	conn           *websocket.Conn
	messagingUC    usecase.MessagingUsecase
	viewerID       uuid.UUID
	conversationID uuid.UUID
	logger         *slog.Logger
}

func (s *realtimeSession) run(parent context.Context, sub *realtime.Subscription, backlog []*entity.Message) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	s.logger.Debug("Realtime subscriber connected")
	defer s.logger.Debug("Realtime subscriber disconnected")

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		s.readLoop(ctx)
	}()

	seen := make(map[uuid.UUID]struct{}, len(backlog))
	for _, message := range backlog {
		seen[message.ID] = struct{}{}
		if err := s.write(RealtimeFrame{Type: FrameMessage, Message: message}); err != nil {
			return
		}
	}

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()
	typing := time.NewTicker(typingPollPeriod)
	defer typing.Stop()

	var lastTyping []uuid.UUID
	for {
		select {
		case <-readDone:
			return
		case message, ok := <-sub.C:
			if !ok {
				return
			}
			if _, dup := seen[message.ID]; dup {
				continue
			}
			if err := s.write(RealtimeFrame{Type: FrameMessage, Message: message}); err != nil {
				return
			}
		case <-typing.C:
			users, err := s.messagingUC.ListTyping(ctx, s.viewerID, s.conversationID)
			if err != nil {
				s.logger.Warn("Failed to poll typing indicators", slog.Any("error", err))

				continue
			}
			if slices.Equal(users, lastTyping) {
				continue
			}
			lastTyping = users
			if err := s.write(RealtimeFrame{Type: FrameTyping, UserIDs: nonNil(users)}); err != nil {
				return
			}
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}

func (s *realtimeSession) readLoop(ctx context.Context) {
	s.conn.SetReadLimit(wsMaxFrameBytes)
	_ = s.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		var frame clientFrame
		if err := s.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("Realtime read failed", slog.Any("error", err))
			}

			return
		}
		if frame.Type != FrameTyping {
			continue
		}
		if err := s.messagingUC.SetTyping(ctx, s.viewerID, s.conversationID); err != nil {
			s.logger.Warn("Failed to set typing indicator", slog.Any("error", err))
		}
	}
}

func (s *realtimeSession) write(frame RealtimeFrame) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))

	return s.conn.WriteJSON(frame)
}
