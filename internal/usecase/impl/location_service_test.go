package impl

import (
	"context"
	"math"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_SetLocation(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	svc := NewLocationService(locationRepo, newDiscardLogger())
	customerID := uuid.New()

	locationRepo.EXPECT().
		Upsert(mock.Anything, mock.MatchedBy(func(loc *entity.CustomerLocation) bool {
			return loc.CustomerID == customerID && loc.Address == "Sea Point, Cape Town" && loc.Coordinate != nil
		})).
		Return(nil)

	location, err := svc.SetLocation(context.Background(), customerID, &usecase.SetLocationInput{
		Address:    "  Sea Point, Cape Town ",
		Coordinate: &entity.Coordinate{Lat: capeTownLat, Lng: capeTownLng},
	})
	require.NoError(t, err)
	assert.True(t, location.IsSet())
}

func TestLocationService_SetLocation_RejectsInvalidCoordinates(t *testing.T) {
	tests := []entity.Coordinate{
		{Lat: 90.5, Lng: 0},
		{Lat: 0, Lng: -181},
		{Lat: math.NaN(), Lng: 0},
		{Lat: 0, Lng: math.Inf(1)},
	}

	for _, coord := range tests {
		svc := NewLocationService(mockRepo.NewMockLocationRepository(t), newDiscardLogger())

		_, err := svc.SetLocation(context.Background(), uuid.New(), &usecase.SetLocationInput{Coordinate: &coord})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	}
}

func TestLocationService_GetLocation(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("never set", func(t *testing.T) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		locationRepo.EXPECT().FindByCustomer(ctx, customerID).Return(nil, repository.ErrLocationNotFound)

		location, err := NewLocationService(locationRepo, newDiscardLogger()).GetLocation(ctx, customerID)
		require.NoError(t, err)
		assert.False(t, location.IsSet())
		assert.Equal(t, customerID, location.CustomerID)
	})

	t.Run("database error", func(t *testing.T) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		locationRepo.EXPECT().FindByCustomer(ctx, customerID).Return(nil, errors.New("connection refused"))

		_, err := NewLocationService(locationRepo, newDiscardLogger()).GetLocation(ctx, customerID)
		assert.Error(t, err)
	})
}
