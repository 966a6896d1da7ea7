package entity

import (
	"math"
	"strings"

	"storefront/internal/errors"
)

// ErrInvalidDeliveryProfile is returned when a delivery profile carries unusable values.
var ErrInvalidDeliveryProfile = errors.New("invalid delivery profile")

// DeliveryProfile governs where a catalog item may be delivered.
//
// NoDelivery takes precedence over every other field; AvailableEverywhere
// comes next. Otherwise the item is deliverable by region match or by
// distance from Location within DeliveryRadiusKm.
type DeliveryProfile struct {
	AvailableEverywhere bool        `json:"available_everywhere"`
	Region              string      `json:"region,omitempty"` // Free-text locality; empty means none
	Location            *Coordinate `json:"location,omitempty"`
	DeliveryRadiusKm    *float64    `json:"delivery_radius_km,omitempty"`
	NoDelivery          bool        `json:"no_delivery"` // Collection only
}

// HasRegion reports whether the profile carries a usable region.
func (p DeliveryProfile) HasRegion() bool {
	return strings.TrimSpace(p.Region) != ""
}

// HasRadius reports whether location and a finite radius are both present.
func (p DeliveryProfile) HasRadius() bool {
	if p.Location == nil || p.DeliveryRadiusKm == nil {
		return false
	}
	r := *p.DeliveryRadiusKm

	return !math.IsNaN(r) && !math.IsInf(r, 0)
}

// Validate checks location bounds and radius sign. maxRadiusKm <= 0 disables the upper bound.
func (p DeliveryProfile) Validate(maxRadiusKm float64) error {
	if p.Location != nil {
		if err := p.Location.Validate(); err != nil {
			return err
		}
	}

	if p.DeliveryRadiusKm != nil {
		r := *p.DeliveryRadiusKm
		if math.IsNaN(r) || r < 0 {
			return errors.Wrapf(ErrInvalidDeliveryProfile, "delivery radius %f", r)
		}
		if maxRadiusKm > 0 && r > maxRadiusKm {
			return errors.Wrapf(ErrInvalidDeliveryProfile, "delivery radius %f exceeds %f", r, maxRadiusKm)
		}
	}

	return nil
}
