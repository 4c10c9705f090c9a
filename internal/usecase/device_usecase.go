package usecase

import (
	"context"

	"heyfarmer/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform entity.Platform
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	// ListDevices retrieves the active devices of a user
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice deactivates a device owned by the user
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
