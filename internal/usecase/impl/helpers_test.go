package impl

import (
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	giftCardID      = "static-gift-card"
	hamperID        = "static-market-hamper"
	capeTownBoxID   = "static-cape-town-box"
	bikeTuneUpID    = "static-bike-tune-up"
	testCurrency    = "ZAR"
	testMaxRadius   = 50.0
	capeTownLat     = -33.9249
	capeTownLng     = 18.4241
	stellenboschLat = -33.9321
	stellenboschLng = 18.8602
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// newTestConfig carries a small static catalog covering each delivery rule.
func newTestConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			Currency:            testCurrency,
			MaxDeliveryRadiusKm: testMaxRadius,
			Static: []config.StaticItemConfig{
				{ID: giftCardID, Vertical: "product", Name: "Gift Card", Price: "1500.00", AvailableEverywhere: true},
				{ID: hamperID, Vertical: "product", Name: "Market Hamper", Price: "420.00", NoDelivery: true},
				{ID: capeTownBoxID, Vertical: "grocery", Name: "Cape Town Veg Box", Price: "4000.00", Region: "Cape Town"},
				{
					ID: bikeTuneUpID, Vertical: "service", Name: "Bike Tune-up", Price: "350.00",
					Latitude: ptr(capeTownLat), Longitude: ptr(capeTownLng), DeliveryRadiusKm: ptr(15.0),
				},
			},
		},
	}
}

func newTestCatalog(t *testing.T, catalogRepo *mockRepo.MockCatalogRepository) *catalog.Catalog {
	t.Helper()

	cat, err := NewCatalog(newTestConfig(), catalogRepo)
	require.NoError(t, err)

	return cat
}

func marketplaceListing(supplierID uuid.UUID, price string, stock *int) *entity.CatalogItem {
	return &entity.CatalogItem{
		ID:         uuid.NewString(),
		Source:     entity.CatalogSourceMarketplace,
		Vertical:   entity.VerticalFreelance,
		Name:       "Logo design",
		Price:      decimal.RequireFromString(price),
		SupplierID: &supplierID,
		Stock:      stock,
		Delivery:   entity.DeliveryProfile{AvailableEverywhere: true},
	}
}
