package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeRequest describes a single payment attempt.
type ChargeRequest struct {
	OrderID        uuid.UUID
	CustomerID     uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Method         entity.PaymentMethod
	IdempotencyKey string
}

// ChargeResult is the gateway's answer. A decline is a result, not an error.
type ChargeResult struct {
	Approved      bool
	Reference     string
	DeclineReason string
}

// PaymentProcessor charges customers.
// Errors are reserved for transport or provider failures.
type PaymentProcessor interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}
