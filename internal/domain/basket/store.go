// Package basket holds the per-customer cart and wishlist collections.
//
// A store is rehydrated from a KVStore when constructed and flushed back as a
// JSON array after every mutation. Each store serializes its own
// read-modify-write-persist cycles with a mutex. With a VersionedKVStore every
// write is conditional on the version that was read, and a conflicting write
// reloads the durable value and applies the mutation again.
package basket

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const maxWriteAttempts = 5

// ErrQuantityLimit is returned when a mutation would push a line past its limit.
var ErrQuantityLimit = errors.New("quantity limit exceeded")

type collection[T any] struct {
	mu        sync.Mutex
	kv        service.KVStore
	versioned service.VersionedKVStore
	key       string
	items     []T
	version   int64
	clean     func([]T) []T
	loadErr   error
	logger    *slog.Logger
}

// loadCollection reads key from kv. Missing keys and corrupt JSON start an
// empty collection; a read failure does too, and is also returned so callers
// can refuse to act on data they never saw.
func loadCollection[T any](ctx context.Context, kv service.KVStore, key string, clean func([]T) []T, logger *slog.Logger) (*collection[T], error) {
	c := &collection[T]{
		kv:     kv,
		key:    key,
		items:  []T{},
		clean:  clean,
		logger: logger,
	}
	if v, ok := kv.(service.VersionedKVStore); ok {
		c.versioned = v
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c, c.reload(ctx)
}

// reload replaces the in-memory items with the durable value. Callers hold mu.
func (c *collection[T]) reload(ctx context.Context) error {
	raw, version, found, err := c.read(ctx)
	if err != nil {
		c.logger.Warn("Failed to load basket, starting empty",
			slog.String("key", c.key),
			slog.Any("error", err),
		)
		c.items = []T{}
		c.loadErr = err

		return errors.Wrapf(err, "load %s", c.key)
	}

	c.loadErr = nil
	c.version = version
	c.items = []T{}
	if !found || raw == "" {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn("Corrupt basket data, starting empty",
			slog.String("key", c.key),
			slog.Any("error", err),
		)

		return nil
	}
	if c.clean != nil {
		items = c.clean(items)
	}
	if items != nil {
		c.items = items
	}

	return nil
}

func (c *collection[T]) read(ctx context.Context) (string, int64, bool, error) {
	if c.versioned != nil {
		return c.versioned.GetVersioned(ctx, c.key)
	}
	raw, found, err := c.kv.Get(ctx, c.key)

	return raw, 0, found, err
}

func (c *collection[T]) write(ctx context.Context, data string) error {
	if c.versioned == nil {
		return c.kv.Set(ctx, c.key, data)
	}

	version, err := c.versioned.CompareAndSet(ctx, c.key, data, c.version)
	if err != nil {
		return err
	}
	c.version = version

	return nil
}

// mutate applies fn to a copy of the items and persists the result.
// The in-memory state only changes once the write succeeded. A collection
// whose load failed is reloaded first and never written blind.
func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loadErr != nil {
		if err := c.reload(ctx); err != nil {
			return err
		}
	}

	for attempt := 1; ; attempt++ {
		next, changed, err := fn(slices.Clone(c.items))
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if next == nil {
			next = []T{}
		}

		data, err := json.Marshal(next)
		if err != nil {
			return errors.WithStack(err)
		}

		err = c.write(ctx, string(data))
		if err == nil {
			c.items = next

			return nil
		}
		if !errors.Is(err, service.ErrVersionConflict) || attempt == maxWriteAttempts {
			return errors.Wrapf(err, "persist %s", c.key)
		}

		c.logger.Debug("Basket changed underneath, reloading",
			slog.String("key", c.key),
			slog.Int("attempt", attempt),
		)
		if err := c.reload(ctx); err != nil {
			return err
		}
	}
}

func (c *collection[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.items)
}
