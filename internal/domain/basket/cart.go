package basket

import (
	"context"
	"log/slog"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
)

// Cart is a customer's shopping cart. Line items are unique by ID and every
// quantity is at least 1.
type Cart struct {
	c *collection[entity.CartLineItem]
}

// NewCart rehydrates the cart stored under key. A failed read starts an empty
// cart that reloads before its first write.
func NewCart(ctx context.Context, kv service.KVStore, key string, logger *slog.Logger) *Cart {
	cart, _ := LoadCart(ctx, kv, key, logger)

	return cart
}

// LoadCart is NewCart that also returns the read error. The cart is usable either way.
func LoadCart(ctx context.Context, kv service.KVStore, key string, logger *slog.Logger) (*Cart, error) {
	c, err := loadCollection(ctx, kv, key, validLines, logger)

	return &Cart{c: c}, err
}

// validLines drops rows that violate the quantity floor.
func validLines(items []entity.CartLineItem) []entity.CartLineItem {
	return slices.DeleteFunc(items, func(l entity.CartLineItem) bool {
		return l.ID == "" || l.Quantity < 1
	})
}

// AddToCart increments the quantity of an existing line by one, or inserts the
// item with quantity 1.
func (c *Cart) AddToCart(ctx context.Context, item entity.CartLineItem) error {
	return c.AddToCartLimited(ctx, item, nil)
}

// AddToCartLimited is AddToCart with a cap on the resulting quantity. A nil
// limit means unlimited; exceeding it returns ErrQuantityLimit.
func (c *Cart) AddToCartLimited(ctx context.Context, item entity.CartLineItem, limit *int) error {
	return c.c.mutate(ctx, func(items []entity.CartLineItem) ([]entity.CartLineItem, bool, error) {
		i := indexOfLine(items, item.ID)
		quantity := 1
		if i >= 0 {
			quantity = items[i].Quantity + 1
		}
		if limit != nil && quantity > *limit {
			return nil, false, ErrQuantityLimit
		}

		if i >= 0 {
			items[i].Quantity = quantity

			return items, true, nil
		}

		item.Quantity = 1

		return append(items, item), true, nil
	})
}

// UpdateQuantity sets the quantity of a line. A quantity <= 0 removes the line.
// Unknown IDs are ignored.
func (c *Cart) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	return c.UpdateQuantityLimited(ctx, id, quantity, nil)
}

// UpdateQuantityLimited is UpdateQuantity with a cap that only applies when the
// quantity grows, so an over-stocked line can always be reduced.
func (c *Cart) UpdateQuantityLimited(ctx context.Context, id string, quantity int, limit *int) error {
	return c.c.mutate(ctx, func(items []entity.CartLineItem) ([]entity.CartLineItem, bool, error) {
		i := indexOfLine(items, id)
		if i < 0 {
			return items, false, nil
		}
		if quantity <= 0 {
			return slices.Delete(items, i, i+1), true, nil
		}
		if items[i].Quantity == quantity {
			return items, false, nil
		}
		if limit != nil && quantity > items[i].Quantity && quantity > *limit {
			return nil, false, ErrQuantityLimit
		}

		items[i].Quantity = quantity

		return items, true, nil
	})
}

// RemoveFromCart deletes a line; absent IDs are a no-op.
func (c *Cart) RemoveFromCart(ctx context.Context, id string) error {
	return c.c.mutate(ctx, func(items []entity.CartLineItem) ([]entity.CartLineItem, bool, error) {
		i := indexOfLine(items, id)
		if i < 0 {
			return items, false, nil
		}

		return slices.Delete(items, i, i+1), true, nil
	})
}

// ClearCart empties the cart and persists the empty state.
func (c *Cart) ClearCart(ctx context.Context) error {
	return c.c.mutate(ctx, func([]entity.CartLineItem) ([]entity.CartLineItem, bool, error) {
		return []entity.CartLineItem{}, true, nil
	})
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []entity.CartLineItem {
	return c.c.snapshot()
}

// Total is the sum of price × quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.c.snapshot() {
		total = total.Add(line.Subtotal())
	}

	return total
}

// Count is the sum of quantities, not the number of lines.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.c.snapshot() {
		count += line.Quantity
	}

	return count
}

// Contains reports whether a line with id exists.
func (c *Cart) Contains(id string) bool {
	return indexOfLine(c.c.snapshot(), id) >= 0
}

// Quantity returns the quantity of a line, or 0 when absent.
func (c *Cart) Quantity(id string) int {
	items := c.c.snapshot()
	if i := indexOfLine(items, id); i >= 0 {
		return items[i].Quantity
	}

	return 0
}

func indexOfLine(items []entity.CartLineItem, id string) int {
	return slices.IndexFunc(items, func(l entity.CartLineItem) bool {
		return l.ID == id
	})
}
