package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or updates an existing one
	RegisterDevice(ctx context.Context, customerID uuid.UUID, deviceInfo *DeviceInfo) (*entity.CustomerDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, customerID, deviceID uuid.UUID, fcmToken string) error

	// GetCustomerDevices retrieves all active devices for a customer
	GetCustomerDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, customerID, deviceID uuid.UUID) error
}
