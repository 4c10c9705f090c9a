package handler

import (
	"net/http"

	"heyfarmer/internal/delivery/api/response"
	"heyfarmer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WaitlistHandlerParams holds dependencies for WaitlistHandler, injected by Fx.
type WaitlistHandlerParams struct {
	fx.In

	WaitlistUC usecase.WaitlistUsecase
}

// WaitlistHandler records pre-launch signups.
type WaitlistHandler struct {
	waitlistUC usecase.WaitlistUsecase
}

// NewWaitlistHandler is the constructor for WaitlistHandler
func NewWaitlistHandler(params WaitlistHandlerParams) *WaitlistHandler {
	return &WaitlistHandler{waitlistUC: params.WaitlistUC}
}

// JoinWaitlistRequest is the signup form.
type JoinWaitlistRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"max=120"`
	Role   string `json:"role" validate:"role"`
	County string `json:"county" validate:"county"`
}

// JoinWaitlistView reports whether the email was new.
type JoinWaitlistView struct {
	Created bool `json:"created"`
}

// Join answers 201 for a new email and 200 when it was already listed.
func (h *WaitlistHandler) Join(c echo.Context) error {
	var req JoinWaitlistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	created, err := h.waitlistUC.Join(c.Request().Context(), &usecase.JoinWaitlistInput{
		Email:  req.Email,
		Name:   req.Name,
		Role:   req.Role,
		County: normalizeCounty(req.County),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, JoinWaitlistView{Created: created})
}
