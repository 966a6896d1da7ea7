// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a customer.
	CreateDevice(ctx context.Context, device *entity.CustomerDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.CustomerDevice, error)

	// FindDevicesByCustomer retrieves all devices for a customer (including inactive).
	FindDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// FindActiveDevicesByCustomer retrieves all active devices for a customer.
	FindActiveDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateByTokens marks every device holding one of tokens as inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
