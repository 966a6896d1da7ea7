package impl

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/kvstore"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service      usecase.CartUsecase
	kv           service.KVStore
	catalogRepo  *mockRepo.MockCatalogRepository
	locationRepo *mockRepo.MockLocationRepository
}

func createTestCartService(t *testing.T, kv service.KVStore) cartServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	svc := NewCartService(CartServiceParams{
		KV:           kv,
		Catalog:      newTestCatalog(t, catalogRepo),
		LocationRepo: locationRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:      svc,
		kv:           kv,
		catalogRepo:  catalogRepo,
		locationRepo: locationRepo,
	}
}

func (f cartServiceFixtures) withLocation(customerID uuid.UUID, location *entity.CustomerLocation) {
	if location == nil {
		f.locationRepo.EXPECT().
			FindByCustomer(mock.Anything, customerID).
			Return(nil, repository.ErrLocationNotFound).
			Maybe()

		return
	}

	location.CustomerID = customerID
	f.locationRepo.EXPECT().
		FindByCustomer(mock.Anything, customerID).
		Return(location, nil).
		Maybe()
}

func TestCartService_AddToCart_IncrementsAndPersists(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	f := createTestCartService(t, kv)
	ctx := context.Background()
	customerID := uuid.New()
	f.withLocation(customerID, nil)

	_, err := f.service.AddToCart(ctx, customerID, giftCardID)
	require.NoError(t, err)
	summary, err := f.service.AddToCart(ctx, customerID, giftCardID)
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)
	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, testCurrency, summary.Currency)

	raw, found, err := kv.Get(ctx, "cart:"+customerID.String())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, raw, giftCardID)

	// A fresh service rehydrates from the store
	reloaded := createTestCartService(t, kv)
	cart, err := reloaded.service.GetCart(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Count)
}

func TestCartService_AddToCart_ChecksDelivery(t *testing.T) {
	tests := []struct {
		name     string
		itemID   string
		location *entity.CustomerLocation
		wantErr  error
	}{
		{"no location", capeTownBoxID, nil, domainerrors.ErrLocationRequired},
		{"wrong region", capeTownBoxID, &entity.CustomerLocation{Address: "Durban"}, domainerrors.ErrItemUnavailable},
		{"outside radius", bikeTuneUpID, &entity.CustomerLocation{Coordinate: &entity.Coordinate{Lat: stellenboschLat, Lng: stellenboschLng}}, domainerrors.ErrItemUnavailable},
		{"region match", capeTownBoxID, &entity.CustomerLocation{Address: "1 Long St, cape town"}, nil},
		{"within radius", bikeTuneUpID, &entity.CustomerLocation{Coordinate: &entity.Coordinate{Lat: capeTownLat, Lng: capeTownLng}}, nil},
		{"collection only", hamperID, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCartService(t, kvstore.NewMemoryStore())
			customerID := uuid.New()
			f.withLocation(customerID, tt.location)

			summary, err := f.service.AddToCart(context.Background(), customerID, tt.itemID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, summary.Count)
		})
	}
}

func TestCartService_AddToCart_UnknownItem(t *testing.T) {
	f := createTestCartService(t, kvstore.NewMemoryStore())
	f.catalogRepo.EXPECT().
		FindByID(mock.Anything, "nope").
		Return(nil, repository.ErrListingNotFound)

	_, err := f.service.AddToCart(context.Background(), uuid.New(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCartService_AddToCart_RespectsStock(t *testing.T) {
	f := createTestCartService(t, kvstore.NewMemoryStore())
	ctx := context.Background()
	customerID := uuid.New()
	listing := marketplaceListing(uuid.New(), "80.00", ptr(1))
	f.withLocation(customerID, nil)
	f.catalogRepo.EXPECT().FindByID(mock.Anything, listing.ID).Return(listing, nil)

	_, err := f.service.AddToCart(ctx, customerID, listing.ID)
	require.NoError(t, err)

	_, err = f.service.AddToCart(ctx, customerID, listing.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	f := createTestCartService(t, kvstore.NewMemoryStore())
	ctx := context.Background()
	customerID := uuid.New()
	f.withLocation(customerID, nil)

	_, err := f.service.AddToCart(ctx, customerID, giftCardID)
	require.NoError(t, err)

	summary, err := f.service.UpdateQuantity(ctx, customerID, giftCardID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Count)

	summary, err = f.service.UpdateQuantity(ctx, customerID, "unknown", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Count)

	summary, err = f.service.UpdateQuantity(ctx, customerID, giftCardID, 0)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	_, err = f.service.AddToCart(ctx, customerID, giftCardID)
	require.NoError(t, err)
	summary, err = f.service.RemoveFromCart(ctx, customerID, giftCardID)
	require.NoError(t, err)
	assert.Zero(t, summary.Count)
	assert.True(t, summary.Total.IsZero())
}

func TestCartService_PersistFailureIsReported(t *testing.T) {
	kv := mockSvc.NewMockKVStore(t)
	kv.EXPECT().Get(mock.Anything, mock.Anything).Return("", false, nil)
	kv.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("throttled"))

	f := createTestCartService(t, kv)
	customerID := uuid.New()
	f.withLocation(customerID, nil)

	_, err := f.service.AddToCart(context.Background(), customerID, giftCardID)
	assert.ErrorIs(t, err, domainerrors.ErrBasketPersistFailed)

	cart, err := f.service.GetCart(context.Background(), customerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_ConcurrentAddsForSameCustomer(t *testing.T) {
	f := createTestCartService(t, kvstore.NewMemoryStore())
	ctx := context.Background()
	customerID := uuid.New()
	f.withLocation(customerID, nil)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, _ = f.service.AddToCart(ctx, customerID, giftCardID)
		}()
	}
	wg.Wait()

	cart, err := f.service.GetCart(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, workers, cart.Count)
}

func TestCartService_Wishlist(t *testing.T) {
	f := createTestCartService(t, kvstore.NewMemoryStore())
	ctx := context.Background()
	customerID := uuid.New()
	f.withLocation(customerID, &entity.CustomerLocation{Address: "Cape Town"})

	// Wishlist accepts items that cannot be delivered
	items, err := f.service.AddToWishlist(ctx, customerID, bikeTuneUpID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = f.service.AddToWishlist(ctx, customerID, bikeTuneUpID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = f.service.AddToWishlist(ctx, customerID, capeTownBoxID)
	require.NoError(t, err)

	summary, err := f.service.MoveToCart(ctx, customerID, capeTownBoxID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)

	items, err = f.service.GetWishlist(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, bikeTuneUpID, items[0].ID)

	// Not deliverable: stays in the wishlist
	_, err = f.service.MoveToCart(ctx, customerID, bikeTuneUpID)
	assert.ErrorIs(t, err, domainerrors.ErrItemUnavailable)

	_, err = f.service.MoveToCart(ctx, customerID, giftCardID)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)

	items, err = f.service.RemoveFromWishlist(ctx, customerID, bikeTuneUpID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// flakyKV fails the next failReads reads and otherwise delegates.
type flakyKV struct {
	service.VersionedKVStore

	mu        sync.Mutex
	failReads int
}

func (f *flakyKV) failNextRead() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failReads == 0 {
		return false
	}
	f.failReads--

	return true
}

func (f *flakyKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failNextRead() {
		return "", false, errors.New("connection reset")
	}

	return f.VersionedKVStore.Get(ctx, key)
}

func (f *flakyKV) GetVersioned(ctx context.Context, key string) (string, int64, bool, error) {
	if f.failNextRead() {
		return "", 0, false, errors.New("connection reset")
	}

	return f.VersionedKVStore.GetVersioned(ctx, key)
}

func TestCartService_TransientReadDoesNotLoseCart(t *testing.T) {
	kv := &flakyKV{VersionedKVStore: kvstore.NewMemoryStore()}
	ctx := context.Background()
	customerID := uuid.New()

	// Two services over one store, as two replicas would be
	first := createTestCartService(t, kv)
	second := createTestCartService(t, kv)
	first.withLocation(customerID, nil)
	second.withLocation(customerID, nil)

	_, err := first.service.AddToCart(ctx, customerID, giftCardID)
	require.NoError(t, err)
	_, err = first.service.AddToCart(ctx, customerID, giftCardID)
	require.NoError(t, err)

	kv.failReads = 1
	_, err = second.service.GetCart(ctx, customerID)
	assert.ErrorIs(t, err, domainerrors.ErrBasketUnavailable)

	cart, err := second.service.GetCart(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Count)

	kv.failReads = 1
	_, err = second.service.AddToCart(ctx, customerID, giftCardID)
	assert.ErrorIs(t, err, domainerrors.ErrBasketUnavailable)

	summary, err := second.service.AddToCart(ctx, customerID, giftCardID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)

	cart, err = first.service.GetCart(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Count)
}

func TestCartService_ReleasesCustomerLocks(t *testing.T) {
	f := createTestCartService(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	for range 5 {
		customerID := uuid.New()
		f.withLocation(customerID, nil)
		_, err := f.service.AddToCart(ctx, customerID, giftCardID)
		require.NoError(t, err)
		_, err = f.service.AddToWishlist(ctx, customerID, hamperID)
		require.NoError(t, err)
	}

	assert.Zero(t, f.service.(*cartService).locks.size())
}

func TestCartService_UpdateQuantity_RespectsStock(t *testing.T) {
	f := createTestCartService(t, kvstore.NewMemoryStore())
	ctx := context.Background()
	customerID := uuid.New()
	listing := marketplaceListing(uuid.New(), "80.00", ptr(3))
	f.withLocation(customerID, nil)
	f.catalogRepo.EXPECT().FindByID(mock.Anything, listing.ID).Return(listing, nil)

	_, err := f.service.AddToCart(ctx, customerID, listing.ID)
	require.NoError(t, err)

	_, err = f.service.UpdateQuantity(ctx, customerID, listing.ID, 4)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	summary, err := f.service.UpdateQuantity(ctx, customerID, listing.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)

	// Stock sold elsewhere: the line can still shrink
	listing.Stock = ptr(1)
	summary, err = f.service.UpdateQuantity(ctx, customerID, listing.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
}

func TestCartService_ContendedCartReportsPersistFailure(t *testing.T) {
	kv := mockSvc.NewMockVersionedKVStore(t)
	kv.EXPECT().GetVersioned(mock.Anything, mock.Anything).Return("", 0, false, nil)
	kv.EXPECT().
		CompareAndSet(mock.Anything, mock.Anything, mock.Anything, int64(0)).
		Return(0, service.ErrVersionConflict).
		Times(5)

	f := createTestCartService(t, kv)
	customerID := uuid.New()
	f.withLocation(customerID, nil)

	_, err := f.service.AddToCart(context.Background(), customerID, giftCardID)
	assert.ErrorIs(t, err, domainerrors.ErrBasketPersistFailed)
}
