package handler

import (
	"net/http"
	"time"

	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/response"
	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceHandler manages the caller's push targets.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
	}
}

// RegisterDeviceRequest is the body of POST /devices.
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=200"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceResponse is a registered push target. The FCM token never leaves the server.
type DeviceResponse struct {
	ID              uuid.UUID       `json:"id"`
	DeviceID        string          `json:"device_id"`
	Platform        entity.Platform `json:"platform"`
	RegisteredAt    time.Time       `json:"registered_at"`
	LastRefreshedAt time.Time       `json:"last_refreshed_at"`
}

func toDeviceResponse(device *entity.UserDevice) DeviceResponse {
	return DeviceResponse{
		ID:              device.ID,
		DeviceID:        device.DeviceID,
		Platform:        device.Platform,
		RegisteredAt:    device.CreatedAt,
		LastRefreshedAt: device.UpdatedAt,
	}
}

// RegisterDevice registers a push target for the caller, refreshing the token of a known device.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: entity.Platform(req.Platform),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDeviceResponse(device))
}

// ListDevices returns the caller's active devices.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]DeviceResponse, 0, len(devices))
	for _, device := range devices {
		views = append(views, toDeviceResponse(device))
	}

	return response.List(c, views)
}

// DeactivateDevice stops pushes to one of the caller's devices.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Device deactivated"})
}
