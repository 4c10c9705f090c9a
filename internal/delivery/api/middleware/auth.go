package middleware

import (
	"strings"

	"heyfarmer/internal/delivery/api/response"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"

	// accessTokenQueryParam carries the token for websocket upgrades, where
	// browsers cannot set an Authorization header. Only AuthenticateUpgrade reads it.
	accessTokenQueryParam = "access_token"
)

// AuthMiddleware validates access tokens and exposes the viewer to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, bearerToken)
}

// AuthenticateUpgrade is Authenticate for websocket upgrade routes. It also
// accepts the token in the access_token query parameter.
func (m *AuthMiddleware) AuthenticateUpgrade(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, upgradeToken)
}

func (m *AuthMiddleware) require(next echo.HandlerFunc, extract func(echo.Context) (string, bool)) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, found := extract(c)
		if !found {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Authorization token is missing")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(raw)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		setViewer(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate sets the viewer when a valid token is present and
// lets guests through untouched. An invalid token is treated as a guest.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if raw, found := bearerToken(c); found {
			if claims, err := m.tokenSvc.ValidateAccessToken(raw); err == nil {
				setViewer(c, claims)
			}
		}

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	token, found := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	token = strings.TrimSpace(token)

	return token, found && token != ""
}

func upgradeToken(c echo.Context) (string, bool) {
	if c.Request().Header.Get(echo.HeaderAuthorization) != "" {
		return bearerToken(c)
	}

	token := c.QueryParam(accessTokenQueryParam)

	return token, token != ""
}

func setViewer(c echo.Context, claims *service.Claims) {
	c.Set(contextKeyUserID, claims.UserID)
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetViewer returns the authenticated user id, or nil for a guest.
func GetViewer(c echo.Context) *uuid.UUID {
	id, ok := GetUserID(c)
	if !ok {
		return nil
	}

	return &id
}
