// Package geo holds great-circle helpers shared by availability checks and listing filters.
package geo

import (
	"math"

	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// DistanceKm calculates the great circle distance between two points in kilometers.
// Inputs are degrees and must be finite.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	// Rounding can push a slightly above 1 for antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Between returns the distance in kilometers between two coordinates.
func Between(a, b entity.Coordinate) float64 {
	return DistanceKm(a.Lat, a.Lng, b.Lat, b.Lng)
}

// ToPoint converts a coordinate to an orb point (lng, lat order).
func ToPoint(c entity.Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// BoundsAround returns boxes that together contain every point within radiusKm
// of c. A box crossing the antimeridian is split into one box per side, and a
// circle reaching a pole spans every longitude. It is only a coarse
// pre-filter; exact checks must use DistanceKm.
func BoundsAround(c entity.Coordinate, radiusKm float64) []orb.Bound {
	bound := orbgeo.NewBoundAroundPoint(ToPoint(c), radiusKm*1000)

	// orb measures with a slightly larger radius; pad so the box never undershoots
	bound = bound.Pad(0.01)

	minLat := math.Max(bound.Min[1], -90)
	maxLat := math.Min(bound.Max[1], 90)
	minLng, maxLng := bound.Min[0], bound.Max[0]

	box := func(fromLng, toLng float64) orb.Bound {
		return orb.Bound{Min: orb.Point{fromLng, minLat}, Max: orb.Point{toLng, maxLat}}
	}

	switch {
	case math.IsNaN(minLng) || math.IsNaN(maxLng) || maxLng-minLng >= 360 || minLat <= -90 || maxLat >= 90:
		return []orb.Bound{box(-180, 180)}
	case minLng < -180:
		return []orb.Bound{box(minLng+360, 180), box(-180, maxLng)}
	case maxLng > 180:
		return []orb.Bound{box(minLng, 180), box(-180, maxLng-360)}
	default:
		return []orb.Bound{box(minLng, maxLng)}
	}
}

// AnyContains reports whether c lies in at least one of bounds.
func AnyContains(bounds []orb.Bound, c entity.Coordinate) bool {
	p := ToPoint(c)
	for _, b := range bounds {
		if b.Contains(p) {
			return true
		}
	}

	return false
}
