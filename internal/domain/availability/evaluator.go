// Package availability decides whether a catalog item can be delivered to a customer.
package availability

import (
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/geo"
)

// Reason names the rule that produced a Decision.
type Reason string

const (
	ReasonCollectionOnly      Reason = "collection_only"
	ReasonAvailableEverywhere Reason = "available_everywhere"
	ReasonRegionMatch         Reason = "region_match"
	ReasonWithinRadius        Reason = "within_radius"
	ReasonOutsideRadius       Reason = "outside_radius"
	ReasonLocationRequired    Reason = "location_required"
	ReasonNotServed           Reason = "not_served"
)

// Decision is the outcome of evaluating one delivery profile.
type Decision struct {
	Eligible bool   `json:"eligible"`
	Reason   Reason `json:"reason"`
}

// IsEligible reports whether an item with the given profile can be delivered to the user.
func IsEligible(profile entity.DeliveryProfile, userAddress string, userCoord *entity.Coordinate) bool {
	return Evaluate(profile, userAddress, userCoord).Eligible
}

// Evaluate applies the delivery rules in order; the first matching rule wins.
//
//  1. collection-only items are never deliverable
//  2. available-everywhere items always are
//  3. a non-empty region contained (case-insensitive) in the user's address matches
//  4. with user and item coordinates and a finite radius, distance <= radius decides
//  5. otherwise not deliverable
//
// A user with neither address nor coordinate gets ReasonLocationRequired so callers
// can ask for a location instead of reporting the item as unavailable.
func Evaluate(profile entity.DeliveryProfile, userAddress string, userCoord *entity.Coordinate) Decision {
	if profile.NoDelivery {
		return Decision{Eligible: false, Reason: ReasonCollectionOnly}
	}

	if profile.AvailableEverywhere {
		return Decision{Eligible: true, Reason: ReasonAvailableEverywhere}
	}

	if regionMatches(profile.Region, userAddress) {
		return Decision{Eligible: true, Reason: ReasonRegionMatch}
	}

	if userCoord != nil && profile.HasRadius() {
		distance := geo.Between(*userCoord, *profile.Location)
		if distance <= *profile.DeliveryRadiusKm {
			return Decision{Eligible: true, Reason: ReasonWithinRadius}
		}

		return Decision{Eligible: false, Reason: ReasonOutsideRadius}
	}

	if strings.TrimSpace(userAddress) == "" && userCoord == nil {
		return Decision{Eligible: false, Reason: ReasonLocationRequired}
	}

	return Decision{Eligible: false, Reason: ReasonNotServed}
}

// regionMatches guards against the empty region matching every address.
func regionMatches(region, address string) bool {
	region = strings.TrimSpace(region)
	if region == "" || strings.TrimSpace(address) == "" {
		return false
	}

	return strings.Contains(strings.ToLower(address), strings.ToLower(region))
}
