package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"heyfarmer/internal/delivery/api/response"
	domainerrors "heyfarmer/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantLogged bool
	}{
		{
			name:       "app error",
			err:        errors.Wrap(domainerrors.ErrListingNotFound, "load listing"),
			wantStatus: http.StatusNotFound,
			wantCode:   "LISTING_NOT_FOUND",
		},
		{
			name:       "echo http error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
		},
		{
			name:       "body limit",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "PAYLOAD_TOO_LARGE",
		},
		{
			name:       "unnamed echo status",
			err:        echo.NewHTTPError(http.StatusTeapot, "short and stout"),
			wantStatus: http.StatusTeapot,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unexpected error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/listings/x", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantLogged, bytes.Contains(logs.Bytes(), []byte("Unhandled error")))
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorMiddleware_HeadHasNoBody(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodHead, "/api/v1/media/missing.png", nil), rec)

	m.HandleHTTPError(domainerrors.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorMiddleware_ClientGone(t *testing.T) {
	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil).WithContext(ctx), rec)

	m.HandleHTTPError(errors.Wrap(context.Canceled, "query listings"), c)

	assert.Equal(t, statusClientClosedRequest, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, logs.String())
}
