package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, customerID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.CustomerDevice, error) {
	if deviceInfo == nil || deviceInfo.FCMToken == "" || deviceInfo.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm token and device id are required")
	}

	devices, err := s.deviceRepo.FindDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by customer")
	}

	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updatedDevice, nil
	}

	now := time.Now()
	device := &entity.CustomerDevice{
		ID:         uuid.New(),
		CustomerID: customerID,
		FCMToken:   deviceInfo.FCMToken,
		DeviceID:   deviceInfo.DeviceID,
		Platform:   deviceInfo.Platform,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, customerID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, customerID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetCustomerDevices retrieves all active devices for a customer
func (s *deviceService) GetCustomerDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by customer")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, customerID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, customerID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// ownedDevice hides devices of other customers behind not found.
func (s *deviceService) ownedDevice(ctx context.Context, customerID, deviceID uuid.UUID) (*entity.CustomerDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.CustomerID != customerID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}
