package qrcode

import (
	"encoding/json"
	"fmt"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const pickupType = "pickup"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// PickupPayload returns the JSON text encoded in an order's pickup code
func (s *qrcodeService) PickupPayload(orderID uuid.UUID) (string, error) {
	jsonData, err := json.Marshal(QRCodeData{
		OrderID: orderID.String(),
		Type:    pickupType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return string(jsonData), nil
}

// GeneratePickupQR renders the pickup payload as a PNG
func (s *qrcodeService) GeneratePickupQR(orderID uuid.UUID) ([]byte, error) {
	payload, err := s.PickupPayload(orderID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR parses scanned QR code data and returns the order ID
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != pickupType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	return orderID, nil
}
