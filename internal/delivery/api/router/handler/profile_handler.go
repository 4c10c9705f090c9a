package handler

import (
	"net/http"

	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/response"
	"heyfarmer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves profile and farmer directory endpoints.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateProfileRequest is a partial update; omitted fields are unchanged.
type UpdateProfileRequest struct {
	usecase.UpdateProfileInput
}

// GetMyProfile returns the caller's full profile.
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetMyProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileView(profile))
}

// UpdateMyProfile applies a partial update to the caller's profile.
func (h *ProfileHandler) UpdateMyProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	input := req.UpdateProfileInput
	if input.County != nil {
		normalized := normalizeCounty(*input.County)
		input.County = &normalized
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileView(profile))
}

// GetProfile returns the public projection of a profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profileID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetPublicProfile(c.Request().Context(), middleware.GetViewer(c), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// SearchFarmers lists discoverable farmers matching ?q= and ?county=.
func (h *ProfileHandler) SearchFarmers(c echo.Context) error {
	farmers, err := h.profileUC.SearchFarmers(c.Request().Context(), &usecase.SearchFarmersInput{
		Query:  c.QueryParam("q"),
		County: normalizeCounty(c.QueryParam("county")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, farmers)
}
