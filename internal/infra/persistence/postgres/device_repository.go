package postgres

import (
	"context"
	"time"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDevice registers a device. Re-registering the same (user, device id)
// refreshes the token and platform and reactivates the row.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)
	deviceM.IsActive = true

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"fcm_token":  deviceM.FCMToken,
			"platform":   deviceM.Platform,
			"is_active":  true,
			"updated_at": time.Now(),
		}),
	}).Create(deviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.IsActive = true
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindActiveDevicesByUser retrieves the push targets of a user.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.findByUser(repo.db.WithContext(ctx).Where("user_id = ? AND is_active", userID))
}

// PruneActiveDevices deactivates the user's active devices beyond the keep
// most recently refreshed ones.
func (repo *deviceRepository) PruneActiveDevices(ctx context.Context, userID uuid.UUID, keep int) (int64, error) {
	newest := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Select("id").
		Where("user_id = ? AND is_active", userID).
		Order("updated_at DESC").
		Limit(keep)

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("user_id = ? AND is_active", userID).
		Where("id NOT IN (?)", newest).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to prune devices")
	}

	return result.RowsAffected, nil
}

func (repo *deviceRepository) findByUser(tx *gorm.DB) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel
	if err := tx.Order("updated_at DESC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// DeactivateDevice marks one device inactive.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens marks every device holding one of the tokens inactive.
// Push delivery calls it with tokens the provider reported as unregistered.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()}).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices by token")
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  entity.Platform(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:       data.ID,
		UserID:   data.UserID,
		FCMToken: data.FCMToken,
		DeviceID: data.DeviceID,
		Platform: string(data.Platform),
		IsActive: data.IsActive,
	}
}
