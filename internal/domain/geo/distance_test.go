package geo

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm_Zero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(-33.9249, 18.4241, -33.9249, 18.4241))
	assert.Equal(t, 0.0, DistanceKm(0, 0, 0, 0))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := []entity.Coordinate{
		{Lat: -33.9249, Lng: 18.4241}, // Cape Town
		{Lat: -26.2041, Lng: 28.0473}, // Johannesburg
		{Lat: 51.5074, Lng: -0.1278},  // London
		{Lat: 89.9, Lng: 179.9},
		{Lat: -89.9, Lng: -179.9},
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, Between(a, b), Between(b, a))
		}
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Cape Town to Johannesburg is roughly 1,262 km great-circle
	d := DistanceKm(-33.9249, 18.4241, -26.2041, 28.0473)
	assert.InDelta(t, 1262, d, 5)
}

func TestDistanceKm_OneDegreeOfLatitude(t *testing.T) {
	// 2πR / 360
	assert.InDelta(t, 111.195, DistanceKm(0, 0, 1, 0), 0.001)
}

func TestDistanceKm_Antipodal(t *testing.T) {
	d := DistanceKm(0, 0, 0, 180)
	assert.InDelta(t, EarthRadiusKm*3.141592653589793, d, 0.001)
}

func TestBoundsAround_ContainsRadius(t *testing.T) {
	center := entity.Coordinate{Lat: -33.9249, Lng: 18.4241}
	bounds := BoundsAround(center, 10)
	require.Len(t, bounds, 1)

	north := entity.Coordinate{Lat: center.Lat + 10/111.195, Lng: center.Lng}
	assert.InDelta(t, 10, Between(center, north), 0.01)
	assert.True(t, AnyContains(bounds, north))
	assert.True(t, AnyContains(bounds, center))
	assert.False(t, AnyContains(bounds, entity.Coordinate{Lat: -26.2041, Lng: 28.0473}))
}

func TestBoundsAround_SplitsAtAntimeridian(t *testing.T) {
	tests := []struct {
		name   string
		center entity.Coordinate
		across entity.Coordinate
	}{
		{"east of the line", entity.Coordinate{Lat: -17.7134, Lng: 179.95}, entity.Coordinate{Lat: -17.7134, Lng: -179.9}},
		{"west of the line", entity.Coordinate{Lat: -17.7134, Lng: -179.95}, entity.Coordinate{Lat: -17.7134, Lng: 179.9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Less(t, Between(tt.center, tt.across), 25.0)

			bounds := BoundsAround(tt.center, 25)
			require.Len(t, bounds, 2)
			for _, b := range bounds {
				assert.GreaterOrEqual(t, b.Min.Lon(), -180.0)
				assert.LessOrEqual(t, b.Max.Lon(), 180.0)
			}
			assert.True(t, AnyContains(bounds, tt.center))
			assert.True(t, AnyContains(bounds, tt.across))
			assert.False(t, AnyContains(bounds, entity.Coordinate{Lat: tt.center.Lat, Lng: 0}))
		})
	}
}

func TestBoundsAround_PoleSpansAllLongitudes(t *testing.T) {
	center := entity.Coordinate{Lat: 89.9, Lng: 10}
	bounds := BoundsAround(center, 50)

	require.Len(t, bounds, 1)
	assert.Equal(t, -180.0, bounds[0].Min.Lon())
	assert.Equal(t, 180.0, bounds[0].Max.Lon())
	assert.True(t, AnyContains(bounds, entity.Coordinate{Lat: 89.9, Lng: -170}))
}
