// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"storefront/internal/errors"
)

// ErrInvalidCoordinate is returned for NaN, infinite or out-of-range coordinates.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate rejects coordinates outside lat [-90,90] / lng [-180,180].
// Out-of-range values are never clamped.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return errors.Wrap(ErrInvalidCoordinate, "non-finite value")
	}

	if c.Lat < -90 || c.Lat > 90 {
		return errors.Wrapf(ErrInvalidCoordinate, "latitude %f out of range", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return errors.Wrapf(ErrInvalidCoordinate, "longitude %f out of range", c.Lng)
	}

	return nil
}
