package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a marketplace listing does not exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrInsufficientStock is returned when a conditional stock decrement matched no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ListingFilter narrows marketplace listing queries.
type ListingFilter struct {
	// Vertical restricts results to one vertical when set.
	Vertical *entity.Vertical

	// Bounds keeps radius-limited listings whose origin lies inside any of
	// the boxes. Listings without an origin are always returned.
	Bounds []orb.Bound

	Limit int
}

// CatalogRepository defines persistence for supplier (marketplace) listings.
type CatalogRepository interface {
	// Create persists a new listing and fills in its generated ID and timestamps.
	Create(ctx context.Context, item *entity.CatalogItem) error

	// FindByID retrieves a listing by ID.
	FindByID(ctx context.Context, id string) (*entity.CatalogItem, error)

	// FindByIDs retrieves the listings that exist among ids. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.CatalogItem, error)

	// List retrieves listings matching filter, newest first.
	List(ctx context.Context, filter ListingFilter) ([]*entity.CatalogItem, error)

	// ListBySupplier retrieves all listings owned by a supplier, newest first.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.CatalogItem, error)

	// DecrementStock subtracts quantity when at least quantity units remain.
	// Listings with unlimited stock are left untouched.
	DecrementStock(ctx context.Context, id string, quantity int) error
}
