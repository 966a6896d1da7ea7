package impl

import (
	"context"

	"storefront/internal/domain/loyalty"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type loyaltyService struct {
	orderRepo repository.OrderRepository
}

// NewLoyaltyService creates a new loyalty service instance
func NewLoyaltyService(orderRepo repository.OrderRepository) usecase.LoyaltyUsecase {
	return &loyaltyService{
		orderRepo: orderRepo,
	}
}

// GetSummary derives the tier from historical spend on every call
func (s *loyaltyService) GetSummary(ctx context.Context, customerID uuid.UUID) (*usecase.LoyaltySummary, error) {
	spent, err := s.orderRepo.SumCompletedSpend(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum completed spend")
	}

	points, err := s.orderRepo.SumPoints(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum loyalty points")
	}

	return &usecase.LoyaltySummary{
		TotalSpent:    spent,
		PointsBalance: points,
		Progress:      loyalty.CalculateTierProgress(spent),
	}, nil
}
