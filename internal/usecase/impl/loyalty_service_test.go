package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoyaltyService_GetSummary(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	orderRepo := mockRepo.NewMockOrderRepository(t)

	orderRepo.EXPECT().SumCompletedSpend(ctx, customerID).Return(decimal.NewFromInt(10000), nil)
	orderRepo.EXPECT().SumPoints(ctx, customerID).Return(int64(12500), nil)

	summary, err := NewLoyaltyService(orderRepo).GetSummary(ctx, customerID)
	require.NoError(t, err)

	assert.True(t, summary.TotalSpent.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, int64(12500), summary.PointsBalance)
	assert.Equal(t, entity.TierSilver, summary.Progress.Current)
	require.NotNil(t, summary.Progress.NextTier)
	assert.Equal(t, entity.TierGold, *summary.Progress.NextTier)
	assert.InDelta(t, 50.0, summary.Progress.Progress, 0.0001)
}

func TestLoyaltyService_GetSummary_RepositoryError(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	orderRepo := mockRepo.NewMockOrderRepository(t)

	orderRepo.EXPECT().SumCompletedSpend(ctx, customerID).Return(decimal.Zero, errors.New("timeout"))

	_, err := NewLoyaltyService(orderRepo).GetSummary(ctx, customerID)
	assert.Error(t, err)
}
