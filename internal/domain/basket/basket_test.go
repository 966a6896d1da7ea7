package basket

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	mu      sync.Mutex
	data    map[string]string
	writes  int
	getErr  error
	failSet bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]

	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSet {
		return errors.New("disk full")
	}
	f.data[key] = value
	f.writes++

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func line(id, price string) entity.CartLineItem {
	return entity.CartLineItem{ID: id, Name: id, Price: decimal.RequireFromString(price), Quantity: 7}
}

func TestCart_AddSameItemTwice(t *testing.T) {
	ctx := context.Background()
	cart := NewCart(ctx, newFakeKV(), "cart:c1", discardLogger())

	require.NoError(t, cart.AddToCart(ctx, line("veg-box", "249.50")))
	require.NoError(t, cart.AddToCart(ctx, line("veg-box", "249.50")))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.Count())
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("499")))
}

func TestCart_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	cart := NewCart(ctx, newFakeKV(), "cart:c1", discardLogger())
	require.NoError(t, cart.AddToCart(ctx, line("a", "10")))
	require.NoError(t, cart.AddToCart(ctx, line("b", "2.25")))

	require.NoError(t, cart.UpdateQuantity(ctx, "b", 4))
	assert.Equal(t, 4, cart.Quantity("b"))
	assert.Equal(t, 5, cart.Count())
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("19")))

	require.NoError(t, cart.UpdateQuantity(ctx, "a", 0))
	assert.False(t, cart.Contains("a"))

	require.NoError(t, cart.UpdateQuantity(ctx, "b", -3))
	assert.False(t, cart.Contains("b"))
	assert.Equal(t, 0, cart.Count())

	require.NoError(t, cart.UpdateQuantity(ctx, "missing", 3))
	assert.Empty(t, cart.Items())
}

func TestCart_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	cart := NewCart(ctx, kv, "cart:c1", discardLogger())

	require.NoError(t, cart.RemoveFromCart(ctx, "nothing"))
	require.NoError(t, cart.ClearCart(ctx))
	assert.Equal(t, "[]", kv.data["cart:c1"])

	require.NoError(t, cart.AddToCart(ctx, line("a", "1")))
	require.NoError(t, cart.AddToCart(ctx, line("b", "1")))
	require.NoError(t, cart.RemoveFromCart(ctx, "a"))
	assert.False(t, cart.Contains("a"))
	assert.True(t, cart.Contains("b"))

	require.NoError(t, cart.ClearCart(ctx))
	assert.Empty(t, cart.Items())
	assert.True(t, cart.Total().IsZero())
}

func TestCart_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()

	cart := NewCart(ctx, kv, "cart:c1", discardLogger())
	require.NoError(t, cart.AddToCart(ctx, line("a", "99.99")))
	require.NoError(t, cart.UpdateQuantity(ctx, "a", 3))

	reloaded := NewCart(ctx, kv, "cart:c1", discardLogger())
	assert.Equal(t, 3, reloaded.Quantity("a"))
	assert.True(t, reloaded.Total().Equal(decimal.RequireFromString("299.97")))
}

func TestCart_CorruptOrUnreadableStartsEmpty(t *testing.T) {
	ctx := context.Background()

	kv := newFakeKV()
	kv.data["cart:c1"] = "{not json"
	cart := NewCart(ctx, kv, "cart:c1", discardLogger())
	assert.Empty(t, cart.Items())
	require.NoError(t, cart.AddToCart(ctx, line("a", "1")))
	assert.Equal(t, 1, cart.Count())

	broken := newFakeKV()
	broken.getErr = errors.New("timeout")
	cart = NewCart(ctx, broken, "cart:c1", discardLogger())
	assert.Empty(t, cart.Items())
}

func TestCart_DropsInvalidStoredRows(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	kv.data["cart:c1"] = `[{"id":"a","name":"A","price":"5","quantity":0},{"id":"b","name":"B","price":"5","quantity":2}]`

	cart := NewCart(ctx, kv, "cart:c1", discardLogger())
	assert.False(t, cart.Contains("a"))
	assert.Equal(t, 2, cart.Quantity("b"))
}

func TestCart_PersistFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	cart := NewCart(ctx, kv, "cart:c1", discardLogger())
	require.NoError(t, cart.AddToCart(ctx, line("a", "1")))

	kv.failSet = true
	err := cart.AddToCart(ctx, line("a", "1"))
	require.Error(t, err)
	assert.Equal(t, 1, cart.Quantity("a"))

	require.Error(t, cart.ClearCart(ctx))
	assert.True(t, cart.Contains("a"))
}

func TestCart_ConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	cart := NewCart(ctx, kv, "cart:c1", discardLogger())

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cart.AddToCart(ctx, line("a", "1")))
		}()
	}
	wg.Wait()

	assert.Equal(t, n, cart.Quantity("a"))
	assert.Equal(t, n, NewCart(ctx, kv, "cart:c1", discardLogger()).Quantity("a"))
}

func TestWishlist_SetSemantics(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	wl := NewWishlist(ctx, kv, "wishlist:c1", discardLogger())

	item := entity.CatalogItem{ID: "gift-card", Name: "Gift Card", Price: decimal.NewFromInt(500)}
	require.NoError(t, wl.AddToWishlist(ctx, item))
	require.NoError(t, wl.AddToWishlist(ctx, item))
	assert.Equal(t, 1, wl.Count())
	assert.True(t, wl.IsInWishlist("gift-card"))
	assert.Equal(t, 1, kv.writes)

	reloaded := NewWishlist(ctx, kv, "wishlist:c1", discardLogger())
	assert.True(t, reloaded.IsInWishlist("gift-card"))

	require.NoError(t, wl.RemoveFromWishlist(ctx, "gift-card"))
	require.NoError(t, wl.RemoveFromWishlist(ctx, "gift-card"))
	assert.False(t, wl.IsInWishlist("gift-card"))
	assert.Equal(t, 0, wl.Count())
}

func TestWishlist_IndependentOfCart(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	cart := NewCart(ctx, kv, "cart:c1", discardLogger())
	wl := NewWishlist(ctx, kv, "wishlist:c1", discardLogger())

	require.NoError(t, cart.AddToCart(ctx, line("x", "3")))
	require.NoError(t, wl.AddToWishlist(ctx, entity.CatalogItem{ID: "x"}))
	require.NoError(t, cart.UpdateQuantity(ctx, "x", 0))

	assert.False(t, cart.Contains("x"))
	assert.True(t, wl.IsInWishlist("x"))

	require.NoError(t, wl.Clear(ctx))
	assert.Empty(t, wl.Items())
}

// versionedKV is a fakeKV with compare-and-set writes.
type versionedKV struct {
	*fakeKV
	versions       map[string]int64
	alwaysConflict bool
}

func newVersionedKV() *versionedKV {
	return &versionedKV{fakeKV: newFakeKV(), versions: map[string]int64{}}
}

func (v *versionedKV) GetVersioned(ctx context.Context, key string) (string, int64, bool, error) {
	value, found, err := v.Get(ctx, key)
	if err != nil {
		return "", 0, false, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	return value, v.versions[key], found, nil
}

func (v *versionedKV) CompareAndSet(_ context.Context, key, value string, expected int64) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.alwaysConflict || v.versions[key] != expected {
		return 0, service.ErrVersionConflict
	}
	v.data[key] = value
	v.versions[key]++
	v.writes++

	return v.versions[key], nil
}

func TestCart_FailedLoadNeverOverwritesDurableCart(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	seeded := NewCart(ctx, kv, "cart:c1", discardLogger())
	require.NoError(t, seeded.AddToCart(ctx, line("a", "1")))
	require.NoError(t, seeded.AddToCart(ctx, line("a", "1")))
	writes := kv.writes

	kv.getErr = errors.New("timeout")
	cart, err := LoadCart(ctx, kv, "cart:c1", discardLogger())
	require.Error(t, err)
	assert.Empty(t, cart.Items())

	// Still unreadable: the write is refused
	require.Error(t, cart.AddToCart(ctx, line("a", "1")))
	assert.Equal(t, writes, kv.writes)

	// Healed: the durable lines are reloaded before the write
	kv.getErr = nil
	require.NoError(t, cart.AddToCart(ctx, line("a", "1")))
	assert.Equal(t, 3, cart.Quantity("a"))
	assert.Equal(t, 3, NewCart(ctx, kv, "cart:c1", discardLogger()).Quantity("a"))
}

func TestCart_StaleCopyRetriesOnVersionConflict(t *testing.T) {
	ctx := context.Background()
	kv := newVersionedKV()

	first := NewCart(ctx, kv, "cart:c1", discardLogger())
	second := NewCart(ctx, kv, "cart:c1", discardLogger())

	require.NoError(t, first.AddToCart(ctx, line("a", "1")))
	require.NoError(t, first.AddToCart(ctx, line("a", "1")))

	// second still holds the empty cart it loaded
	require.NoError(t, second.AddToCart(ctx, line("a", "1")))
	assert.Equal(t, 3, second.Quantity("a"))
	assert.Equal(t, 3, NewCart(ctx, kv, "cart:c1", discardLogger()).Quantity("a"))
}

func TestCart_GivesUpAfterRepeatedConflicts(t *testing.T) {
	ctx := context.Background()
	kv := newVersionedKV()
	cart := NewCart(ctx, kv, "cart:c1", discardLogger())

	kv.alwaysConflict = true
	err := cart.AddToCart(ctx, line("a", "1"))
	require.ErrorIs(t, err, service.ErrVersionConflict)
	assert.Empty(t, cart.Items())
}

func TestCart_LimitedMutations(t *testing.T) {
	ctx := context.Background()
	cart := NewCart(ctx, newFakeKV(), "cart:c1", discardLogger())
	limit := 2

	require.NoError(t, cart.AddToCartLimited(ctx, line("a", "1"), &limit))
	require.NoError(t, cart.AddToCartLimited(ctx, line("a", "1"), &limit))
	assert.ErrorIs(t, cart.AddToCartLimited(ctx, line("a", "1"), &limit), ErrQuantityLimit)
	assert.Equal(t, 2, cart.Quantity("a"))

	assert.ErrorIs(t, cart.UpdateQuantityLimited(ctx, "a", 5, &limit), ErrQuantityLimit)
	assert.Equal(t, 2, cart.Quantity("a"))

	// Reducing a line is always allowed, even above a shrunken limit
	require.NoError(t, cart.UpdateQuantity(ctx, "a", 4))
	zero := 0
	require.NoError(t, cart.UpdateQuantityLimited(ctx, "a", 3, &zero))
	assert.Equal(t, 3, cart.Quantity("a"))
}
