package repository

import (
	"context"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push targets users register.
type DeviceRepository interface {
	// UpsertDevice registers a device, refreshing the FCM token when the
	// (user, device id) pair is already known.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindActiveDevicesByUser returns the user's push targets, most recently
	// refreshed first.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// PruneActiveDevices keeps the newest keep active devices of the user and
	// deactivates the rest, returning how many were deactivated.
	PruneActiveDevices(ctx context.Context, userID uuid.UUID, keep int) (int64, error)

	// DeactivateDevice marks one device inactive.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// DeactivateByTokens marks every device holding one of the tokens inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) error
}
