package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput represents a checkout request
type CheckoutInput struct {
	PaymentMethod  entity.PaymentMethod `json:"payment_method" validate:"required"`
	IdempotencyKey string               `json:"idempotency_key" validate:"required,max=128"`
	Fulfilment     entity.Fulfilment    `json:"fulfilment" validate:"required"`
}

// CheckoutResult is returned by a successful checkout or its replay
type CheckoutResult struct {
	Order        *entity.Order `json:"order"`
	PointsEarned int64         `json:"points_earned"`
	PreviousTier entity.Tier   `json:"previous_tier"`
	NewTier      entity.Tier   `json:"new_tier"`
	TierUpgraded bool          `json:"tier_upgraded"`
	Replayed     bool          `json:"replayed"`
}

// CheckoutUsecase defines order placement and pickup use cases
type CheckoutUsecase interface {
	// Checkout charges the customer's cart and records the order
	Checkout(ctx context.Context, customerID uuid.UUID, input *CheckoutInput) (*CheckoutResult, error)

	GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// PickupQR renders the pickup code of a collection order as PNG
	PickupQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error)

	// VerifyPickup marks a scanned order as collected for a supplier with items in it
	VerifyPickup(ctx context.Context, supplierID uuid.UUID, qrPayload string) (*entity.Order, error)
}
