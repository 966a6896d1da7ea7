// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
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

// CreateDevice persists a new device for a customer.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.CustomerDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.CustomerDevice, error) {
	var deviceM model.CustomerDeviceModel

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

// FindDevicesByCustomer retrieves all devices for a customer (including inactive, excluding soft-deleted).
func (repo *deviceRepository) FindDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	var deviceModels []*model.CustomerDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by customer")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveDevicesByCustomer retrieves all active devices for a customer.
func (repo *deviceRepository) FindActiveDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	var deviceModels []*model.CustomerDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND is_active = ?", customerID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by customer")
	}

	return toDeviceDomains(deviceModels), nil
}

// UpdateFCMToken replaces a device's token and marks it active again.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"fcm_token": fcmToken,
			"is_active": true,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens flags devices whose tokens the push provider rejected.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", tokens, true).
		Update("is_active", false)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices by token")
	}

	return result.RowsAffected, nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CustomerDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomains(deviceModels []*model.CustomerDeviceModel) []*entity.CustomerDevice {
	devices := make([]*entity.CustomerDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// toDeviceDomain converts a GORM CustomerDeviceModel to a domain CustomerDevice entity.
func toDeviceDomain(data *model.CustomerDeviceModel) *entity.CustomerDevice {
	if data == nil {
		return nil
	}

	return &entity.CustomerDevice{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain CustomerDevice entity to a GORM CustomerDeviceModel.
func fromDeviceDomain(data *entity.CustomerDevice) *model.CustomerDeviceModel {
	if data == nil {
		return nil
	}

	return &model.CustomerDeviceModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
