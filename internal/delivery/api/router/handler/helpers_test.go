package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/validator"
	"heyfarmer/internal/domain/service"
	mockSvc "heyfarmer/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-access-token"

// testServer is an echo instance configured like the API server, with an
// auth middleware that accepts testToken for viewer.
type testServer struct {
	e      *echo.Echo
	auth   *middleware.AuthMiddleware
	viewer uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	viewer := uuid.New()

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateAccessToken(testToken).
		Return(&service.Claims{UserID: viewer, Role: "consumer", Type: service.TokenTypeAccess}, nil).Maybe()
	tokens.EXPECT().ValidateAccessToken(mock.MatchedBy(func(s string) bool { return s != testToken })).
		Return(nil, echo.ErrUnauthorized).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return &testServer{e: e, auth: middleware.NewAuthMiddleware(tokens), viewer: viewer}
}

// do issues a request; signedIn adds the bearer token.
func (s *testServer) do(method, target, body string, signedIn bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if signedIn {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &out), string(env.Data))

	return out
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}

