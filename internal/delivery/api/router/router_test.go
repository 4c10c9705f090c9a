package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/router/handler"
	"heyfarmer/internal/infra/metrics"
	mockSvc "heyfarmer/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	e := echo.New()
	NewRouter(RouterParams{
		AuthHandler:         &handler.AuthHandler{},
		ProfileHandler:      &handler.ProfileHandler{},
		ListingHandler:      &handler.ListingHandler{},
		ConversationHandler: &handler.ConversationHandler{},
		ContactHandler:      &handler.ContactHandler{},
		CountyHandler:       handler.NewCountyHandler(),
		WaitlistHandler:     &handler.WaitlistHandler{},
		MediaHandler:        &handler.MediaHandler{},
		DeviceHandler:       &handler.DeviceHandler{},
		RealtimeHandler:     &handler.RealtimeHandler{},
		HealthHandler:       &handler.HealthHandler{},
		AuthMiddleware:      middleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t)),
		Metrics:             metrics.NewRecorder(),
	}).RegisterRoutes(e, func(next echo.HandlerFunc) echo.HandlerFunc { return next })

	return e
}

func TestRegisterRoutes(t *testing.T) {
	e := newTestEcho(t)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /health/ready",
		"GET /metrics",
		"POST /api/v1/auth/signup",
		"POST /api/v1/auth/google",
		"POST /api/v1/auth/recovery/exchange",
		"GET /api/v1/profiles/farmers",
		"GET /api/v1/listings",
		"GET /api/v1/listings/:id/qr",
		"PATCH /api/v1/listings/:id/status",
		"DELETE /api/v1/listings/:id/save",
		"GET /api/v1/saved",
		"GET /api/v1/conversations/:id/messages",
		"POST /api/v1/contact",
		"GET /api/v1/counties/:slug",
		"POST /api/v1/waitlist",
		"POST /api/v1/media/images",
		"GET /api/v1/media/*",
		"DELETE /api/v1/devices/:id",
		"GET /api/v1/realtime/conversations/:id",
	} {
		assert.True(t, registered[want], "route %s is not registered", want)
	}
}

func TestRegisterRoutes_PublicAndProtected(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "county directory is public", method: http.MethodGet, path: "/api/v1/counties", want: http.StatusOK},
		{name: "metrics are exposed", method: http.MethodGet, path: "/metrics", want: http.StatusOK},
		{name: "inbox needs a token", method: http.MethodGet, path: "/api/v1/conversations", want: http.StatusUnauthorized},
		{name: "saved listings need a token", method: http.MethodGet, path: "/api/v1/saved", want: http.StatusUnauthorized},
		{name: "uploads need a token", method: http.MethodPost, path: "/api/v1/media/images", want: http.StatusUnauthorized},
		{name: "query token only opens upgrades", method: http.MethodGet, path: "/api/v1/conversations?access_token=abc", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
