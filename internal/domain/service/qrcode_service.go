package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates a PNG QR code for collecting an order
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// PickupPayload returns the text encoded in an order's pickup QR code
	PickupPayload(orderID uuid.UUID) (string, error)

	// ParsePickupQR parses scanned QR code data and returns the order ID
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
