package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDevice is a push-capable device registered by a customer.
type CustomerDevice struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	FCMToken   string    `json:"fcm_token"`
	DeviceID   string    `json:"device_id"` // Client-generated installation ID
	Platform   string    `json:"platform"`  // "ios", "android" or "web"
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
