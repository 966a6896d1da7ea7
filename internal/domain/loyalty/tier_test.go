package loyalty

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zar(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateTier(t *testing.T) {
	tests := []struct {
		spent string
		want  entity.Tier
	}{
		{"0", entity.TierBronze},
		{"-10", entity.TierBronze},
		{"4999.99", entity.TierBronze},
		{"5000", entity.TierSilver},
		{"14999", entity.TierSilver},
		{"15000", entity.TierGold},
		{"29999.99", entity.TierGold},
		{"30000", entity.TierPlatinum},
		{"1000000", entity.TierPlatinum},
	}

	for _, tt := range tests {
		t.Run(tt.spent, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTier(zar(tt.spent)))
		})
	}
}

func TestCalculateTierProgress_Platinum(t *testing.T) {
	for _, spent := range []string{"30000", "45000"} {
		p := CalculateTierProgress(zar(spent))
		assert.Nil(t, p.NextTier)
		assert.Equal(t, 100.0, p.Progress)
		assert.Equal(t, entity.TierPlatinum, p.Current)
		assert.True(t, p.AmountToNext.IsZero())
	}
}

func TestCalculateTierProgress_Halfway(t *testing.T) {
	p := CalculateTierProgress(zar("10000"))
	require.NotNil(t, p.NextTier)
	assert.Equal(t, entity.TierGold, *p.NextTier)
	assert.Equal(t, entity.TierSilver, p.Current)
	assert.InDelta(t, 50.0, p.Progress, 1e-9)
	assert.True(t, p.AmountToNext.Equal(zar("5000")))

	p = CalculateTierProgress(zar("2500"))
	require.NotNil(t, p.NextTier)
	assert.Equal(t, entity.TierSilver, *p.NextTier)
	assert.InDelta(t, 50.0, p.Progress, 1e-9)
}

func TestCalculateTierProgress_FloorIsZero(t *testing.T) {
	p := CalculateTierProgress(zar("5000"))
	assert.Equal(t, 0.0, p.Progress)

	p = CalculateTierProgress(zar("-50"))
	assert.Equal(t, entity.TierBronze, p.Current)
	assert.Equal(t, 0.0, p.Progress)
}

func TestCalculateLoyaltyPoints_Truncates(t *testing.T) {
	assert.Equal(t, int64(99), CalculateLoyaltyPoints(zar("99.99"), entity.TierBronze))
	assert.Equal(t, int64(149), CalculateLoyaltyPoints(zar("99.99"), entity.TierSilver))
	assert.Equal(t, int64(199), CalculateLoyaltyPoints(zar("99.99"), entity.TierGold))
	assert.Equal(t, int64(299), CalculateLoyaltyPoints(zar("99.99"), entity.TierPlatinum))
	assert.Equal(t, int64(0), CalculateLoyaltyPoints(zar("-20"), entity.TierGold))
	assert.Equal(t, int64(0), CalculateLoyaltyPoints(zar("0.5"), entity.TierBronze))
}

func TestEvaluatePurchase_CrossingThresholdUsesOldRate(t *testing.T) {
	outcome := EvaluatePurchase(zar("4000"), zar("1500"))

	assert.Equal(t, int64(1500), outcome.PointsEarned)
	assert.Equal(t, entity.TierBronze, outcome.PreviousTier)
	assert.Equal(t, entity.TierSilver, outcome.NewTier)
	assert.True(t, outcome.Upgraded)
	assert.True(t, outcome.NewTotalSpent.Equal(zar("5500")))
}

func TestEvaluatePurchase_Idempotent(t *testing.T) {
	first := EvaluatePurchase(zar("14000"), zar("999.99"))
	second := EvaluatePurchase(zar("14000"), zar("999.99"))

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1499), first.PointsEarned)
	assert.False(t, first.Upgraded)
}

func TestTiers_ReturnsCopy(t *testing.T) {
	table := Tiers()
	table[0].Tier = entity.TierPlatinum

	assert.Equal(t, entity.TierBronze, CalculateTier(decimal.Zero))
}
