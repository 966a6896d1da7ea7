package entity

// Tier is a loyalty status level derived from cumulative spend.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// String returns the string representation of the Tier.
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the Tier is a known value.
func (t Tier) IsValid() bool {
	switch t {
	case TierBronze, TierSilver, TierGold, TierPlatinum:
		return true
	default:
		return false
	}
}
