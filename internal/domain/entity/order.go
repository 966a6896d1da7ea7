package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusCollected OrderStatus = "collected"
)

// PaymentMethod is the method the customer selected at checkout.
type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodInstantEFT PaymentMethod = "instant_eft"
	PaymentMethodWallet     PaymentMethod = "wallet"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodInstantEFT, PaymentMethodWallet:
		return true
	default:
		return false
	}
}

// Fulfilment is how the order reaches the customer.
type Fulfilment string

const (
	FulfilmentDelivery   Fulfilment = "delivery"
	FulfilmentCollection Fulfilment = "collection"
)

// Order is a completed (or attempted) checkout.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	IdempotencyKey   string          `json:"idempotency_key,omitempty"`
	Status           OrderStatus     `json:"status"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	Fulfilment       Fulfilment      `json:"fulfilment"`
	Total            decimal.Decimal `json:"total"`
	PointsEarned     int64           `json:"points_earned"`
	TierAtPurchase   Tier            `json:"tier_at_purchase"`
	TierAfter        Tier            `json:"tier_after"`
	Items            []OrderItem     `json:"items"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderItem is a cart line frozen into an order.
type OrderItem struct {
	ID         uuid.UUID       `json:"id"`
	OrderID    uuid.UUID       `json:"order_id"`
	ItemID     string          `json:"item_id"`
	Source     CatalogSource   `json:"source"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	SupplierID *uuid.UUID      `json:"supplier_id,omitempty"`
}

// Subtotal returns unit price × quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
