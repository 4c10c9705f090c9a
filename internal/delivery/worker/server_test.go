package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heyfarmer/config"
	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/delivery/worker/handler"
	mockUsecase "heyfarmer/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:        cfg,
		Logger:        logger,
		Notifications: mockUsecase.NewMockNotificationUsecase(t),
	})

	return NewEcho(cfg, logger, push)
}

func TestNewEcho_Health(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "probe-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"worker"}`, rec.Body.String())
	assert.Equal(t, "probe-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestNewEcho_PushRoute(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed envelope", body: `{"message":`, want: http.StatusBadRequest},
		{name: "oversized envelope", body: `{"message":{"data":"` + strings.Repeat("a", 300*1024) + `"}}`, want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)

			req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
