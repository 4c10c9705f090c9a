package handler

import (
	"net/http"

	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/response"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
}

// ContactHandler serves the "contact seller" action.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{contactUC: params.ContactUC}
}

// ContactRequest names a listing, a profile, or both.
type ContactRequest struct {
	CounterpartyID *uuid.UUID `json:"counterparty_id"`
	ListingID      *uuid.UUID `json:"listing_id"`
}

// Contact resolves or creates the conversation and returns where to navigate.
// Guests get a login redirect instead of a 401.
func (h *ContactHandler) Contact(c echo.Context) error {
	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	if req.CounterpartyID == nil && req.ListingID == nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("counterparty_id or listing_id is required"))
	}

	input := &usecase.ContactInput{
		ViewerID:  middleware.GetViewer(c),
		ListingID: req.ListingID,
	}
	if req.CounterpartyID != nil {
		input.CounterpartyID = *req.CounterpartyID
	}

	result, err := h.contactUC.Contact(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
