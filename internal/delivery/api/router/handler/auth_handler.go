package handler

import (
	"net/http"

	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/response"
	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthHandler serves account and session endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC}
}

// SignUpRequest creates an email account with the profile seed.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"max=120"`
	FarmName string `json:"farm_name" validate:"max=120"`
	Role     string `json:"role" validate:"role"`
	County   string `json:"county" validate:"county"`
	City     string `json:"city" validate:"max=120"`
}

// SignInRequest is an email and password sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleSignInRequest carries the ID token obtained from Google on the client.
type GoogleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshTokenRequest carries a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdatePasswordRequest changes the password of the signed-in user.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// RecoveryRequest asks for a password recovery link.
type RecoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RecoveryExchangeRequest redeems a recovery link.
type RecoveryExchangeRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// SessionView describes the signed-in user.
type SessionView struct {
	User           *UserView `json:"user"`
	ActiveSessions int       `json:"active_sessions"`
}

// SignUp handles email account creation.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Metadata: entity.SignupMetadata{
			Name:     req.Name,
			FarmName: req.FarmName,
			Role:     entity.ParseRole(req.Role),
			County:   normalizeCounty(req.County),
			City:     req.City,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAuthView(out))
}

// SignIn handles email and password sign-in.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthView(out))
}

// GoogleSignIn exchanges a Google ID token for a session.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req GoogleSignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.GoogleSignIn(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthView(out))
}

// Refresh issues a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthView(out))
}

// SignOut revokes a refresh token.
func (h *AuthHandler) SignOut(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.SignOut(c.Request().Context(), req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Signed out"})
}

// Session returns the signed-in user.
func (h *AuthHandler) Session(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	out, err := h.authUC.Session(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionView{
		User: &UserView{
			ID:        out.User.ID,
			Email:     out.User.Email,
			Role:      out.Role,
			CreatedAt: out.User.CreatedAt,
		},
		ActiveSessions: out.ActiveSessions,
	})
}

// UpdatePassword changes the caller's password.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.UpdatePassword(c.Request().Context(), userID, &usecase.UpdatePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Password updated"})
}

// RequestRecovery always answers 202 so the endpoint does not reveal which emails exist.
func (h *AuthHandler) RequestRecovery(c echo.Context) error {
	var req RecoveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.RequestPasswordRecovery(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, MessageResponse{Message: "If the account exists, a recovery link is on its way"})
}

// ExchangeRecovery sets a new password from a recovery link.
func (h *AuthHandler) ExchangeRecovery(c echo.Context) error {
	var req RecoveryExchangeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.ExchangeRecoveryToken(c.Request().Context(), &usecase.ExchangeRecoveryInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Password updated, sign in again"})
}
