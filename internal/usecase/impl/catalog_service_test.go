package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/availability"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/geo"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	catalogRepo  *mockRepo.MockCatalogRepository
	locationRepo *mockRepo.MockLocationRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	return catalogServiceFixtures{
		service: NewCatalogService(
			newTestConfig(),
			newTestCatalog(t, catalogRepo),
			catalogRepo,
			locationRepo,
			newDiscardLogger(),
		),
		catalogRepo:  catalogRepo,
		locationRepo: locationRepo,
	}
}

func decisionsByID(entries []*usecase.CatalogEntry) map[string]availability.Decision {
	out := make(map[string]availability.Decision, len(entries))
	for _, e := range entries {
		out[e.Item.ID] = e.Availability
	}

	return out
}

func TestCatalogService_List_AnnotatesAvailability(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	customerID := uuid.New()
	listing := marketplaceListing(uuid.New(), "300.00", nil)

	f.locationRepo.EXPECT().
		FindByCustomer(mock.Anything, customerID).
		Return(&entity.CustomerLocation{
			CustomerID: customerID,
			Address:    "Sea Point, Cape Town",
			Coordinate: &entity.Coordinate{Lat: capeTownLat, Lng: capeTownLng},
		}, nil)
	f.catalogRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter repository.ListingFilter) bool {
			return filter.Vertical == nil && filter.Bounds == nil
		})).
		Return([]*entity.CatalogItem{listing}, nil)

	entries, err := f.service.List(ctx, customerID, usecase.CatalogQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 5)

	decisions := decisionsByID(entries)
	assert.Equal(t, availability.ReasonAvailableEverywhere, decisions[giftCardID].Reason)
	assert.Equal(t, availability.ReasonCollectionOnly, decisions[hamperID].Reason)
	assert.Equal(t, availability.ReasonRegionMatch, decisions[capeTownBoxID].Reason)
	assert.Equal(t, availability.ReasonWithinRadius, decisions[bikeTuneUpID].Reason)
	assert.True(t, decisions[listing.ID].Eligible)
}

func TestCatalogService_List_OnlyAvailableWithoutLocation(t *testing.T) {
	f := createTestCatalogService(t)
	customerID := uuid.New()
	grocery := entity.VerticalGrocery

	f.locationRepo.EXPECT().
		FindByCustomer(mock.Anything, customerID).
		Return(nil, repository.ErrLocationNotFound)
	f.catalogRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter repository.ListingFilter) bool {
			return filter.Bounds == nil && filter.Vertical != nil && *filter.Vertical == grocery
		})).
		Return([]*entity.CatalogItem{}, nil)

	entries, err := f.service.List(context.Background(), customerID, usecase.CatalogQuery{
		Vertical:      &grocery,
		OnlyAvailable: true,
	})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCatalogService_List_OnlyAvailablePrefiltersByRadius(t *testing.T) {
	f := createTestCatalogService(t)
	customerID := uuid.New()
	johannesburg := entity.Coordinate{Lat: -26.2041, Lng: 28.0473}
	far := marketplaceListing(uuid.New(), "120.00", nil)
	far.Delivery = entity.DeliveryProfile{Location: &johannesburg, DeliveryRadiusKm: ptr(10.0)}
	center := entity.Coordinate{Lat: capeTownLat, Lng: capeTownLng}

	f.locationRepo.EXPECT().
		FindByCustomer(mock.Anything, customerID).
		Return(&entity.CustomerLocation{CustomerID: customerID, Coordinate: &center}, nil)
	f.catalogRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter repository.ListingFilter) bool {
			return geo.AnyContains(filter.Bounds, center) && !geo.AnyContains(filter.Bounds, johannesburg)
		})).
		Return([]*entity.CatalogItem{far}, nil)

	entries, err := f.service.List(context.Background(), customerID, usecase.CatalogQuery{OnlyAvailable: true})
	require.NoError(t, err)

	decisions := decisionsByID(entries)
	assert.NotContains(t, decisions, far.ID)
	assert.NotContains(t, decisions, capeTownBoxID)
	assert.Contains(t, decisions, bikeTuneUpID)
}

func TestCatalogService_List_FullViewKeepsFarListings(t *testing.T) {
	f := createTestCatalogService(t)
	customerID := uuid.New()
	johannesburg := entity.Coordinate{Lat: -26.2041, Lng: 28.0473}
	far := marketplaceListing(uuid.New(), "120.00", nil)
	far.Delivery = entity.DeliveryProfile{Location: &johannesburg, DeliveryRadiusKm: ptr(10.0)}

	f.locationRepo.EXPECT().
		FindByCustomer(mock.Anything, customerID).
		Return(&entity.CustomerLocation{
			CustomerID: customerID,
			Coordinate: &entity.Coordinate{Lat: capeTownLat, Lng: capeTownLng},
		}, nil)
	f.catalogRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter repository.ListingFilter) bool {
			return filter.Bounds == nil
		})).
		Return([]*entity.CatalogItem{far}, nil)

	entries, err := f.service.List(context.Background(), customerID, usecase.CatalogQuery{})
	require.NoError(t, err)

	decisions := decisionsByID(entries)
	require.Contains(t, decisions, far.ID)
	assert.False(t, decisions[far.ID].Eligible)
	assert.Equal(t, availability.ReasonOutsideRadius, decisions[far.ID].Reason)
}

func TestCatalogService_CreateListing(t *testing.T) {
	f := createTestCatalogService(t)
	supplierID := uuid.New()
	input := &usecase.CreateListingInput{
		Vertical: entity.VerticalFreelance,
		Name:     "  Logo design  ",
		Price:    decimal.RequireFromString("750.00"),
		Stock:    ptr(3),
		Delivery: entity.DeliveryProfile{
			Location:         &entity.Coordinate{Lat: capeTownLat, Lng: capeTownLng},
			DeliveryRadiusKm: ptr(20.0),
		},
	}

	f.catalogRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(item *entity.CatalogItem) bool {
			return item.Name == "Logo design" &&
				item.Source == entity.CatalogSourceMarketplace &&
				*item.SupplierID == supplierID
		})).
		RunAndReturn(func(_ context.Context, item *entity.CatalogItem) error {
			item.ID = uuid.NewString()

			return nil
		})

	item, err := f.service.CreateListing(context.Background(), supplierID, input)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
}

func TestCatalogService_CreateListing_Validation(t *testing.T) {
	valid := func() *usecase.CreateListingInput {
		return &usecase.CreateListingInput{
			Vertical: entity.VerticalProduct,
			Name:     "Mug",
			Price:    decimal.RequireFromString("90"),
		}
	}

	tests := []struct {
		name    string
		mutate  func(in *usecase.CreateListingInput)
		wantErr error
	}{
		{"unknown vertical", func(in *usecase.CreateListingInput) { in.Vertical = "toys" }, domainerrors.ErrValidationFailed},
		{"blank name", func(in *usecase.CreateListingInput) { in.Name = "  " }, domainerrors.ErrValidationFailed},
		{"zero price", func(in *usecase.CreateListingInput) { in.Price = decimal.Zero }, domainerrors.ErrValidationFailed},
		{"negative stock", func(in *usecase.CreateListingInput) { in.Stock = ptr(-1) }, domainerrors.ErrValidationFailed},
		{"radius above maximum", func(in *usecase.CreateListingInput) { in.Delivery.DeliveryRadiusKm = ptr(testMaxRadius + 1) }, domainerrors.ErrValidationFailed},
		{"latitude out of range", func(in *usecase.CreateListingInput) {
			in.Delivery.Location = &entity.Coordinate{Lat: 95, Lng: 0}
		}, domainerrors.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCatalogService(t)
			input := valid()
			tt.mutate(input)

			_, err := f.service.CreateListing(context.Background(), uuid.New(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	f := createTestCatalogService(t)

	item, err := f.service.Get(context.Background(), capeTownBoxID)
	require.NoError(t, err)
	assert.Equal(t, "Cape Town", item.Delivery.Region)
	assert.Equal(t, entity.CatalogSourceStatic, item.Source)
}
