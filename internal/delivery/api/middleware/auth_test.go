package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"heyfarmer/internal/domain/service"
	mockSvc "heyfarmer/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(target, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		target        string
		authorization string
		token         string
		validateErr   error
		wantStatus    int
		wantViewer    bool
	}{
		{name: "bearer header", target: "/", authorization: "Bearer good", token: "good", wantStatus: http.StatusOK, wantViewer: true},
		{name: "query token ignored", target: "/?access_token=good", wantStatus: http.StatusUnauthorized},
		{name: "missing", target: "/", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", target: "/", authorization: "Basic Zm9vOmJhcg==", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", target: "/", authorization: "Bearer   ", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", target: "/", authorization: "Bearer bad", token: "bad", validateErr: errors.New("expired"), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.token != "" {
				if tt.validateErr != nil {
					tokens.EXPECT().ValidateAccessToken(tt.token).Return(nil, tt.validateErr)
				} else {
					tokens.EXPECT().ValidateAccessToken(tt.token).Return(&service.Claims{UserID: userID}, nil)
				}
			}

			c, rec := newAuthContext(tt.target, tt.authorization)
			var gotViewer *uuid.UUID
			handler := NewAuthMiddleware(tokens).Authenticate(func(c echo.Context) error {
				gotViewer = GetViewer(c)

				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantViewer {
				require.NotNil(t, gotViewer)
				assert.Equal(t, userID, *gotViewer)
			} else {
				assert.Nil(t, gotViewer)
			}
		})
	}
}

func TestAuthMiddleware_AuthenticateUpgrade(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		target        string
		authorization string
		token         string
		wantStatus    int
	}{
		{name: "query token", target: "/?access_token=good", token: "good", wantStatus: http.StatusOK},
		{name: "bearer header", target: "/", authorization: "Bearer good", token: "good", wantStatus: http.StatusOK},
		{name: "header wins over query", target: "/?access_token=other", authorization: "Bearer good", token: "good", wantStatus: http.StatusOK},
		{name: "malformed header does not fall back", target: "/?access_token=good", authorization: "Basic Zm9vOmJhcg==", wantStatus: http.StatusUnauthorized},
		{name: "missing", target: "/", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.token != "" {
				tokens.EXPECT().ValidateAccessToken(tt.token).Return(&service.Claims{UserID: userID}, nil)
			}

			c, rec := newAuthContext(tt.target, tt.authorization)
			handler := NewAuthMiddleware(tokens).AuthenticateUpgrade(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	userID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID}, nil)
	tokens.EXPECT().ValidateAccessToken("stale").Return(nil, errors.New("expired"))

	tests := []struct {
		name          string
		authorization string
		want          *uuid.UUID
	}{
		{name: "guest", want: nil},
		{name: "signed in", authorization: "Bearer good", want: &userID},
		{name: "stale token browses as guest", authorization: "Bearer stale", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("/", tt.authorization)
			var got *uuid.UUID
			handler := NewAuthMiddleware(tokens).OptionalAuthenticate(func(c echo.Context) error {
				got = GetViewer(c)

				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetUserID_RejectsNil(t *testing.T) {
	c, _ := newAuthContext("/", "")
	c.Set(contextKeyUserID, uuid.Nil)

	_, ok := GetUserID(c)

	assert.False(t, ok)
	assert.Nil(t, GetViewer(c))
}
