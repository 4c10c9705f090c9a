package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"heyfarmer/config"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	mockRepo "heyfarmer/internal/mocks/repository"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T, cfg *config.Config) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), deviceRepo
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantKeep int
		pruneErr error
	}{
		{name: "default cap", wantKeep: defaultMaxDevicesPerUser},
		{name: "configured cap", cfg: &config.Config{Marketplace: &config.MarketplaceConfig{MaxDevicesPerUser: 3}}, wantKeep: 3},
		{name: "prune failure is tolerated", wantKeep: defaultMaxDevicesPerUser, pruneErr: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deviceRepo := createTestDeviceService(t, tt.cfg)
			ctx := context.Background()
			userID := uuid.New()

			deviceRepo.EXPECT().
				UpsertDevice(ctx, mock.MatchedBy(func(device *entity.UserDevice) bool {
					return device.UserID == userID && device.FCMToken == "token-1" && device.IsActive
				})).
				Return(nil)
			deviceRepo.EXPECT().PruneActiveDevices(ctx, userID, tt.wantKeep).Return(1, tt.pruneErr)

			device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
				FCMToken: " token-1 ",
				DeviceID: "pixel-8",
				Platform: entity.PlatformAndroid,
			})

			require.NoError(t, err)
			assert.Equal(t, "pixel-8", device.DeviceID)
		})
	}
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	service, _ := createTestDeviceService(t, nil)

	_, err := service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{DeviceID: "pixel-8"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_UpsertFailure(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t, nil)
	ctx := context.Background()

	deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d"})

	assert.ErrorContains(t, err, "failed to upsert device")
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	userID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID}

	tests := []struct {
		name    string
		caller  uuid.UUID
		found   *entity.UserDevice
		findErr error
		wantErr error
	}{
		{name: "owner", caller: userID, found: device},
		{name: "other user", caller: uuid.New(), found: device, wantErr: domainerrors.ErrDeviceNotFound},
		{name: "missing", caller: userID, findErr: repository.ErrDeviceNotFound, wantErr: domainerrors.ErrDeviceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deviceRepo := createTestDeviceService(t, nil)
			ctx := context.Background()

			deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(tt.found, tt.findErr)
			if tt.wantErr == nil {
				deviceRepo.EXPECT().DeactivateDevice(ctx, device.ID).Return(nil)
			}

			err := service.DeactivateDevice(ctx, tt.caller, device.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
