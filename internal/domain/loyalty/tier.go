// Package loyalty maps cumulative spend to tiers and transactions to points.
// Every function is pure; tiers are always derived from spend, never stored.
package loyalty

import (
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// TierRule is one row of the tier table.
type TierRule struct {
	Tier          entity.Tier
	MinSpend      decimal.Decimal
	PointsPerRand decimal.Decimal
}

// tiers is ordered by ascending MinSpend.
var tiers = []TierRule{
	{Tier: entity.TierBronze, MinSpend: decimal.NewFromInt(0), PointsPerRand: decimal.NewFromInt(1)},
	{Tier: entity.TierSilver, MinSpend: decimal.NewFromInt(5000), PointsPerRand: decimal.RequireFromString("1.5")},
	{Tier: entity.TierGold, MinSpend: decimal.NewFromInt(15000), PointsPerRand: decimal.NewFromInt(2)},
	{Tier: entity.TierPlatinum, MinSpend: decimal.NewFromInt(30000), PointsPerRand: decimal.NewFromInt(3)},
}

// Tiers returns a copy of the tier table.
func Tiers() []TierRule {
	out := make([]TierRule, len(tiers))
	copy(out, tiers)

	return out
}

// Rule returns the table row for tier; unknown tiers resolve to bronze.
func Rule(tier entity.Tier) TierRule {
	return tiers[indexOf(tier)]
}

// Progress describes how far a customer is towards the next tier.
type Progress struct {
	Current      entity.Tier     `json:"current"`
	NextTier     *entity.Tier    `json:"next_tier"`
	Progress     float64         `json:"progress"` // 0..100
	AmountToNext decimal.Decimal `json:"amount_to_next"`
}

// CalculateTier returns the highest tier whose minimum spend is <= totalSpent.
func CalculateTier(totalSpent decimal.Decimal) entity.Tier {
	return tiers[tierIndex(totalSpent)].Tier
}

// CalculateTierProgress interpolates linearly between the current and next tier floors.
// At platinum the progress saturates at 100 with no next tier.
func CalculateTierProgress(totalSpent decimal.Decimal) Progress {
	idx := tierIndex(totalSpent)
	current := tiers[idx]

	if idx == len(tiers)-1 {
		return Progress{
			Current:      current.Tier,
			NextTier:     nil,
			Progress:     100,
			AmountToNext: decimal.Zero,
		}
	}

	next := tiers[idx+1]
	spent := decimal.Max(totalSpent, decimal.Zero)
	span := next.MinSpend.Sub(current.MinSpend)
	done := spent.Sub(current.MinSpend)

	pct, _ := done.Div(span).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}

	nextTier := next.Tier

	return Progress{
		Current:      current.Tier,
		NextTier:     &nextTier,
		Progress:     pct,
		AmountToNext: next.MinSpend.Sub(spent),
	}
}

// CalculateLoyaltyPoints returns floor(amount × pointsPerRand) for a single transaction.
// Truncation never over-credits; negative amounts earn nothing.
func CalculateLoyaltyPoints(amount decimal.Decimal, tier entity.Tier) int64 {
	if amount.Sign() <= 0 {
		return 0
	}

	return amount.Mul(Rule(tier).PointsPerRand).Floor().IntPart()
}

// PurchaseOutcome is the loyalty effect of one purchase.
type PurchaseOutcome struct {
	PointsEarned  int64           `json:"points_earned"`
	PreviousTier  entity.Tier     `json:"previous_tier"`
	NewTier       entity.Tier     `json:"new_tier"`
	Upgraded      bool            `json:"upgraded"`
	NewTotalSpent decimal.Decimal `json:"new_total_spent"`
}

// EvaluatePurchase credits points at the tier held before the purchase and derives the
// tier after it. A purchase that crosses a threshold earns at the old rate and flags
// the upgrade for future purchases.
func EvaluatePurchase(priorSpend, amount decimal.Decimal) PurchaseOutcome {
	previous := CalculateTier(priorSpend)
	total := priorSpend.Add(amount)
	next := CalculateTier(total)

	return PurchaseOutcome{
		PointsEarned:  CalculateLoyaltyPoints(amount, previous),
		PreviousTier:  previous,
		NewTier:       next,
		Upgraded:      indexOf(next) > indexOf(previous),
		NewTotalSpent: total,
	}
}

func tierIndex(totalSpent decimal.Decimal) int {
	idx := 0
	for i, rule := range tiers {
		if totalSpent.GreaterThanOrEqual(rule.MinSpend) {
			idx = i
		}
	}

	return idx
}

func indexOf(tier entity.Tier) int {
	for i, rule := range tiers {
		if rule.Tier == tier {
			return i
		}
	}

	return 0
}
