package catalog

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func staticItem(id string, vertical entity.Vertical) *entity.CatalogItem {
	return &entity.CatalogItem{
		ID:       id,
		Vertical: vertical,
		Name:     id,
		Price:    decimal.RequireFromString("100"),
		Delivery: entity.DeliveryProfile{AvailableEverywhere: true},
	}
}

func listing(vertical entity.Vertical) *entity.CatalogItem {
	supplierID := uuid.New()

	return &entity.CatalogItem{
		ID:         uuid.NewString(),
		Source:     entity.CatalogSourceMarketplace,
		Vertical:   vertical,
		Name:       "listing",
		Price:      decimal.RequireFromString("50"),
		SupplierID: &supplierID,
	}
}

func TestNew_RejectsInvalidStaticItems(t *testing.T) {
	badCoord := staticItem("bad-coord", entity.VerticalProduct)
	badCoord.Delivery = entity.DeliveryProfile{Location: &entity.Coordinate{Lat: 91}}

	free := staticItem("free", entity.VerticalProduct)
	free.Price = decimal.Zero

	tests := []struct {
		name  string
		items []*entity.CatalogItem
	}{
		{"empty id", []*entity.CatalogItem{staticItem(" ", entity.VerticalProduct)}},
		{"duplicate", []*entity.CatalogItem{staticItem("a", entity.VerticalProduct), staticItem("a", entity.VerticalGrocery)}},
		{"unknown vertical", []*entity.CatalogItem{staticItem("a", "toys")}},
		{"zero price", []*entity.CatalogItem{free}},
		{"invalid coordinate", []*entity.CatalogItem{badCoord}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items, mockRepo.NewMockCatalogRepository(t))
			assert.Error(t, err)
		})
	}
}

func TestCatalog_FindPrefersStatic(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	cat, err := New([]*entity.CatalogItem{staticItem("gift-card", entity.VerticalProduct)}, repo)
	require.NoError(t, err)

	item, err := cat.Find(context.Background(), "gift-card")
	require.NoError(t, err)
	assert.Equal(t, entity.CatalogSourceStatic, item.Source)

	// Returned items are copies
	item.Name = "changed"
	again, err := cat.Find(context.Background(), "gift-card")
	require.NoError(t, err)
	assert.Equal(t, "gift-card", again.Name)
}

func TestCatalog_FindMapsMissingListing(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockCatalogRepository(t)
	repo.EXPECT().FindByID(ctx, "nope").Return(nil, repository.ErrListingNotFound)

	cat, err := New(nil, repo)
	require.NoError(t, err)

	_, err = cat.Find(ctx, "nope")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCatalog_FindManyQueriesOnlyListings(t *testing.T) {
	ctx := context.Background()
	l := listing(entity.VerticalGrocery)
	repo := mockRepo.NewMockCatalogRepository(t)
	repo.EXPECT().FindByIDs(ctx, []string{l.ID, "missing"}).Return([]*entity.CatalogItem{l}, nil)

	cat, err := New([]*entity.CatalogItem{staticItem("veg-box", entity.VerticalGrocery)}, repo)
	require.NoError(t, err)

	found, err := cat.FindMany(ctx, []string{"veg-box", l.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Contains(t, found, "veg-box")
	assert.Contains(t, found, l.ID)
}

func TestCatalog_BrowseFiltersStaticByVertical(t *testing.T) {
	ctx := context.Background()
	grocery := entity.VerticalGrocery
	l := listing(grocery)

	repo := mockRepo.NewMockCatalogRepository(t)
	repo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.ListingFilter) bool {
			return f.Vertical != nil && *f.Vertical == grocery && f.Bounds == nil
		})).
		Return([]*entity.CatalogItem{l}, nil)

	cat, err := New([]*entity.CatalogItem{
		staticItem("veg-box", entity.VerticalGrocery),
		staticItem("gift-card", entity.VerticalProduct),
	}, repo)
	require.NoError(t, err)

	items, err := cat.Browse(ctx, &grocery, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "veg-box", items[0].ID)
	assert.Equal(t, l.ID, items[1].ID)
}
