// Package catalog merges operator-curated static items with marketplace listings.
package catalog

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/paulmach/orb"
)

// Catalog resolves item IDs against both catalog sources.
// Static IDs shadow marketplace IDs; they never collide in practice since
// listings use UUIDs.
type Catalog struct {
	static   []*entity.CatalogItem
	byID     map[string]*entity.CatalogItem
	listings repository.CatalogRepository
}

// New validates the static items and indexes them by ID.
func New(static []*entity.CatalogItem, listings repository.CatalogRepository) (*Catalog, error) {
	byID := make(map[string]*entity.CatalogItem, len(static))
	for _, item := range static {
		if strings.TrimSpace(item.ID) == "" {
			return nil, errors.New("static catalog item without id")
		}
		if _, dup := byID[item.ID]; dup {
			return nil, errors.Errorf("duplicate static catalog item %q", item.ID)
		}
		if !item.Vertical.IsValid() {
			return nil, errors.Errorf("static catalog item %q has unknown vertical %q", item.ID, item.Vertical)
		}
		if !item.Price.IsPositive() {
			return nil, errors.Errorf("static catalog item %q must have a positive price", item.ID)
		}
		if err := item.Delivery.Validate(0); err != nil {
			return nil, errors.Wrapf(err, "static catalog item %q", item.ID)
		}

		item.Source = entity.CatalogSourceStatic
		item.SupplierID = nil
		item.Stock = nil
		byID[item.ID] = item
	}

	return &Catalog{
		static:   static,
		byID:     byID,
		listings: listings,
	}, nil
}

// Find returns one item from either source.
func (c *Catalog) Find(ctx context.Context, id string) (*entity.CatalogItem, error) {
	if item, ok := c.byID[id]; ok {
		return clone(item), nil
	}

	item, err := c.listings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrItemNotFound, "item %s", id)
		}

		return nil, err
	}

	return item, nil
}

// FindMany resolves ids in one listing query. Missing IDs are absent from the result.
func (c *Catalog) FindMany(ctx context.Context, ids []string) (map[string]*entity.CatalogItem, error) {
	found := make(map[string]*entity.CatalogItem, len(ids))
	remaining := make([]string, 0, len(ids))
	for _, id := range ids {
		if item, ok := c.byID[id]; ok {
			found[id] = clone(item)

			continue
		}
		remaining = append(remaining, id)
	}

	if len(remaining) == 0 {
		return found, nil
	}

	listings, err := c.listings.FindByIDs(ctx, remaining)
	if err != nil {
		return nil, err
	}
	for _, item := range listings {
		found[item.ID] = item
	}

	return found, nil
}

// Browse lists static items followed by marketplace listings.
// bounds, when set, pre-filter radius-limited listings by origin.
func (c *Catalog) Browse(ctx context.Context, vertical *entity.Vertical, bounds []orb.Bound) ([]*entity.CatalogItem, error) {
	items := make([]*entity.CatalogItem, 0, len(c.static))
	for _, item := range c.static {
		if vertical != nil && item.Vertical != *vertical {
			continue
		}
		items = append(items, clone(item))
	}

	listings, err := c.listings.List(ctx, repository.ListingFilter{
		Vertical: vertical,
		Bounds:   bounds,
	})
	if err != nil {
		return nil, err
	}

	return append(items, listings...), nil
}

// clone keeps callers from mutating the shared static items.
func clone(item *entity.CatalogItem) *entity.CatalogItem {
	cp := *item

	return &cp
}
