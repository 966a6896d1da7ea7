package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key"`
	CustomerID       uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_orders_customer_idempotency,priority:1"`
	IdempotencyKey   *string          `gorm:"type:varchar(255);uniqueIndex:idx_orders_customer_idempotency,priority:2"`
	Status           string           `gorm:"type:varchar(20);not null;index"`
	PaymentMethod    string           `gorm:"type:varchar(20);not null"`
	PaymentReference string           `gorm:"type:varchar(255)"`
	Fulfilment       string           `gorm:"type:varchar(20);not null"`
	Total            decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	PointsEarned     int64            `gorm:"not null;default:0"`
	TierAtPurchase   string           `gorm:"type:varchar(20);not null"`
	TierAfter        string           `gorm:"type:varchar(20);not null;default:''"`
	Items            []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID     string          `gorm:"type:varchar(255);not null"`
	Source     string          `gorm:"type:varchar(20);not null"`
	Name       string          `gorm:"type:varchar(255);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity   int             `gorm:"not null;check:quantity > 0"`
	SupplierID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
