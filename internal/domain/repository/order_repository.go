package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateIdempotencyKey is returned when a customer reuses an idempotency key.
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already used")
	// ErrOrderStatusConflict is returned when a status transition precondition fails.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists an order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order and its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIdempotencyKey retrieves the order a customer placed with key.
	FindByIdempotencyKey(ctx context.Context, customerID uuid.UUID, key string) (*entity.Order, error)

	// ListByCustomer retrieves a customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// SumCompletedSpend totals completed and collected orders for a customer.
	SumCompletedSpend(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error)

	// SumPoints totals loyalty points earned by a customer.
	SumPoints(ctx context.Context, customerID uuid.UUID) (int64, error)

	// UpdateStatus moves an order from one status to another.
	// Returns ErrOrderStatusConflict when the order is not in status from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
