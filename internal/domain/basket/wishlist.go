package basket

import (
	"context"
	"log/slog"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// Wishlist is a set of catalog items keyed by ID.
type Wishlist struct {
	c *collection[entity.CatalogItem]
}

// NewWishlist rehydrates the wishlist stored under key.
func NewWishlist(ctx context.Context, kv service.KVStore, key string, logger *slog.Logger) *Wishlist {
	w, _ := LoadWishlist(ctx, kv, key, logger)

	return w
}

// LoadWishlist is NewWishlist that also returns the read error.
func LoadWishlist(ctx context.Context, kv service.KVStore, key string, logger *slog.Logger) (*Wishlist, error) {
	c, err := loadCollection[entity.CatalogItem](ctx, kv, key, nil, logger)

	return &Wishlist{c: c}, err
}

// AddToWishlist inserts item unless its ID is already present.
func (w *Wishlist) AddToWishlist(ctx context.Context, item entity.CatalogItem) error {
	return w.c.mutate(ctx, func(items []entity.CatalogItem) ([]entity.CatalogItem, bool, error) {
		if indexOfItem(items, item.ID) >= 0 {
			return items, false, nil
		}

		return append(items, item), true, nil
	})
}

// RemoveFromWishlist deletes an item; absent IDs are a no-op.
func (w *Wishlist) RemoveFromWishlist(ctx context.Context, id string) error {
	return w.c.mutate(ctx, func(items []entity.CatalogItem) ([]entity.CatalogItem, bool, error) {
		i := indexOfItem(items, id)
		if i < 0 {
			return items, false, nil
		}

		return slices.Delete(items, i, i+1), true, nil
	})
}

// Clear empties the wishlist.
func (w *Wishlist) Clear(ctx context.Context) error {
	return w.c.mutate(ctx, func([]entity.CatalogItem) ([]entity.CatalogItem, bool, error) {
		return []entity.CatalogItem{}, true, nil
	})
}

func (w *Wishlist) IsInWishlist(id string) bool {
	return indexOfItem(w.c.snapshot(), id) >= 0
}

func (w *Wishlist) Count() int {
	return len(w.c.snapshot())
}

// Items returns a copy of the wishlist in insertion order.
func (w *Wishlist) Items() []entity.CatalogItem {
	return w.c.snapshot()
}

func indexOfItem(items []entity.CatalogItem, id string) int {
	return slices.IndexFunc(items, func(i entity.CatalogItem) bool {
		return i.ID == id
	})
}
