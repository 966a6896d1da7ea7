package usecase

import (
	"context"

	"storefront/internal/domain/loyalty"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltySummary is the customer's loyalty dashboard
type LoyaltySummary struct {
	TotalSpent    decimal.Decimal  `json:"total_spent"`
	PointsBalance int64            `json:"points_balance"`
	Progress      loyalty.Progress `json:"progress"`
}

// LoyaltyUsecase defines loyalty use cases
type LoyaltyUsecase interface {
	// GetSummary recomputes tier and progress from completed orders
	GetSummary(ctx context.Context, customerID uuid.UUID) (*LoyaltySummary, error)
}
