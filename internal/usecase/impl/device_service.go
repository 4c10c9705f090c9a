package impl

import (
	"context"
	"log/slog"
	"strings"

	"heyfarmer/config"
	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxDevicesPerUser = 10

type deviceService struct {
	deviceRepo repository.DeviceRepository
	maxDevices int
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Config     *config.Config
	Logger     *slog.Logger
}

func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	srv := &deviceService{
		deviceRepo: params.DeviceRepo,
		maxDevices: defaultMaxDevicesPerUser,
		logger:     params.Logger,
	}
	if params.Config != nil && params.Config.Marketplace != nil && params.Config.Marketplace.MaxDevicesPerUser > 0 {
		srv.maxDevices = params.Config.Marketplace.MaxDevicesPerUser
	}

	return srv
}

// RegisterDevice stores the device as a push target for new messages. A
// known device only gets its token refreshed. Devices past the per-user cap
// are retired oldest first.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	token := strings.TrimSpace(info.FCMToken)
	deviceID := strings.TrimSpace(info.DeviceID)
	if token == "" || deviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm token and device id are required")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: token,
		DeviceID: deviceID,
		Platform: info.Platform,
		IsActive: true,
	}
	if err := srv.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device")
	}

	retired, err := srv.deviceRepo.PruneActiveDevices(ctx, userID, srv.maxDevices)
	if err != nil {
		logBestEffort(ctx, srv.log(ctx), "Failed to retire old devices", err, slog.Any("userID", userID))
	} else if retired > 0 {
		srv.log(ctx).Info("Retired old devices", slog.Any("userID", userID), slog.Int64("count", retired))
	}

	return device, nil
}

func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// DeactivateDevice stops pushes to one device. Devices of other users are
// reported as missing.
func (srv *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to find device")
	}
	if device.UserID != userID {
		return domainerrors.ErrDeviceNotFound
	}

	if err := srv.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
