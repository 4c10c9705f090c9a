package handler

import (
	"net/http"
	"testing"
	"time"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	mockUsecase "heyfarmer/internal/mocks/usecase"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T) (*testServer, *mockUsecase.MockAuthUsecase) {
	srv := newTestServer(t)
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})

	g := srv.e.Group("/auth")
	g.POST("/signup", h.SignUp)
	g.POST("/signin", h.SignIn)
	g.POST("/google", h.GoogleSignIn)
	g.POST("/refresh", h.Refresh)
	g.POST("/signout", h.SignOut)
	g.POST("/recovery", h.RequestRecovery)
	g.POST("/recovery/exchange", h.ExchangeRecovery)
	g.GET("/session", h.Session, srv.auth.Authenticate)
	g.PUT("/password", h.UpdatePassword, srv.auth.Authenticate)

	return srv, authUC
}

func authOutput(role entity.Role) *usecase.AuthOutput {
	return &usecase.AuthOutput{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &entity.User{ID: uuid.New(), Email: "jo@example.com", CreatedAt: time.Now()},
		Role:         role,
	}
}

func TestAuthHandler_SignUp(t *testing.T) {
	srv, authUC := newAuthTestServer(t)

	authUC.EXPECT().SignUp(mock.Anything, &usecase.SignUpInput{
		Email:    "jo@example.com",
		Password: "correct horse battery",
		Metadata: entity.SignupMetadata{
			Name:   "Jo",
			Role:   entity.RoleMarketGardener,
			County: "king",
		},
	}).Return(authOutput(entity.RoleMarketGardener), nil)

	rec := srv.do(http.MethodPost, "/auth/signup",
		`{"email":"jo@example.com","password":"correct horse battery","name":"Jo","role":"market_gardener","county":"king-county"}`, false)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	view := decodeData[AuthView](t, rec)
	assert.Equal(t, "access", view.AccessToken)
	assert.Equal(t, "Bearer", view.TokenType)
	require.NotNil(t, view.User)
	assert.Equal(t, entity.RoleMarketGardener, view.User.Role)
}

func TestAuthHandler_SignUpDefaultsToConsumer(t *testing.T) {
	srv, authUC := newAuthTestServer(t)

	authUC.EXPECT().
		SignUp(mock.Anything, mock.MatchedBy(func(in *usecase.SignUpInput) bool {
			return in.Metadata.Role == entity.RoleConsumer
		})).
		Return(authOutput(entity.RoleConsumer), nil)

	rec := srv.do(http.MethodPost, "/auth/signup", `{"email":"jo@example.com","password":"correct horse battery"}`, false)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAuthHandler_SignUpConflict(t *testing.T) {
	srv, authUC := newAuthTestServer(t)

	authUC.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := srv.do(http.MethodPost, "/auth/signup", `{"email":"jo@example.com","password":"correct horse battery"}`, false)

	requireErrorCode(t, rec, http.StatusConflict, "USER_ALREADY_EXISTS")
}

func TestAuthHandler_SignIn(t *testing.T) {
	srv, authUC := newAuthTestServer(t)

	authUC.EXPECT().SignIn(mock.Anything, &usecase.SignInInput{Email: "jo@example.com", Password: "pw"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := srv.do(http.MethodPost, "/auth/signin", `{"email":"jo@example.com","password":"pw"}`, false)

	requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestAuthHandler_GoogleSignIn(t *testing.T) {
	srv, authUC := newAuthTestServer(t)

	authUC.EXPECT().GoogleSignIn(mock.Anything, "google-id-token").Return(authOutput(entity.RoleConsumer), nil)

	rec := srv.do(http.MethodPost, "/auth/google", `{"id_token":"google-id-token"}`, false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAuthHandler_RefreshAndSignOut(t *testing.T) {
	srv, authUC := newAuthTestServer(t)

	authUC.EXPECT().Refresh(mock.Anything, "refresh").Return(authOutput(entity.RoleConsumer), nil)
	authUC.EXPECT().SignOut(mock.Anything, "refresh").Return(nil)

	rec := srv.do(http.MethodPost, "/auth/refresh", `{"refresh_token":"refresh"}`, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(http.MethodPost, "/auth/signout", `{"refresh_token":"refresh"}`, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAuthHandler_Session(t *testing.T) {
	srv, authUC := newAuthTestServer(t)

	authUC.EXPECT().Session(mock.Anything, srv.viewer).Return(&usecase.SessionOutput{
		User:           &entity.User{ID: srv.viewer, Email: "jo@example.com"},
		Role:           entity.RoleProductionFarmer,
		ActiveSessions: 3,
	}, nil)

	rec := srv.do(http.MethodGet, "/auth/session", "", true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decodeData[SessionView](t, rec)
	assert.Equal(t, 3, view.ActiveSessions)
	assert.Equal(t, srv.viewer, view.User.ID)
	assert.Equal(t, entity.RoleProductionFarmer, view.User.Role)
}

func TestAuthHandler_SessionRequiresToken(t *testing.T) {
	srv, _ := newAuthTestServer(t)

	rec := srv.do(http.MethodGet, "/auth/session", "", false)

	requireErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHENTICATED")
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	srv, authUC := newAuthTestServer(t)

	authUC.EXPECT().UpdatePassword(mock.Anything, srv.viewer, &usecase.UpdatePasswordInput{
		CurrentPassword: "old",
		NewPassword:     "a much better password",
	}).Return(nil)

	rec := srv.do(http.MethodPut, "/auth/password", `{"current_password":"old","new_password":"a much better password"}`, true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAuthHandler_Recovery(t *testing.T) {
	srv, authUC := newAuthTestServer(t)

	authUC.EXPECT().RequestPasswordRecovery(mock.Anything, "jo@example.com").Return(nil)
	authUC.EXPECT().ExchangeRecoveryToken(mock.Anything, &usecase.ExchangeRecoveryInput{
		Token:       "recovery-token",
		NewPassword: "a much better password",
	}).Return(domainerrors.ErrRecoveryTokenInvalid)

	rec := srv.do(http.MethodPost, "/auth/recovery", `{"email":"jo@example.com"}`, false)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	rec = srv.do(http.MethodPost, "/auth/recovery/exchange", `{"token":"recovery-token","new_password":"a much better password"}`, false)
	require.Equal(t, domainerrors.ErrRecoveryTokenInvalid.HTTPCode(), rec.Code, rec.Body.String())
	assert.Equal(t, "RECOVERY_TOKEN_INVALID", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_RejectsMalformedBody(t *testing.T) {
	srv, _ := newAuthTestServer(t)

	rec := srv.do(http.MethodPost, "/auth/signin", `{"email":`, false)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}
