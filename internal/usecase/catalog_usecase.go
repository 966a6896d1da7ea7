package usecase

import (
	"context"

	"storefront/internal/domain/availability"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogQuery narrows the storefront catalog
type CatalogQuery struct {
	Vertical      *entity.Vertical
	OnlyAvailable bool // Drop items that cannot be delivered to the customer
}

// CatalogEntry is a catalog item annotated with its availability for one customer
type CatalogEntry struct {
	Item         *entity.CatalogItem   `json:"item"`
	Availability availability.Decision `json:"availability"`
}

// CreateListingInput represents a new marketplace listing
type CreateListingInput struct {
	Vertical    entity.Vertical        `json:"vertical" validate:"required"`
	Name        string                 `json:"name" validate:"required,max=200"`
	Description string                 `json:"description" validate:"max=2000"`
	Price       decimal.Decimal        `json:"price"`
	Image       string                 `json:"image" validate:"omitempty,max=500"`
	Stock       *int                   `json:"stock,omitempty" validate:"omitempty,min=0"`
	Delivery    entity.DeliveryProfile `json:"delivery"`
}

// CatalogUsecase defines the storefront catalog use cases
type CatalogUsecase interface {
	// List returns static and marketplace items for the customer's location
	List(ctx context.Context, customerID uuid.UUID, query CatalogQuery) ([]*CatalogEntry, error)

	// Get returns one item from either source
	Get(ctx context.Context, id string) (*entity.CatalogItem, error)

	// CreateListing publishes a marketplace listing owned by supplierID
	CreateListing(ctx context.Context, supplierID uuid.UUID, input *CreateListingInput) (*entity.CatalogItem, error)

	// ListSupplierListings returns the listings a supplier owns
	ListSupplierListings(ctx context.Context, supplierID uuid.UUID) ([]*entity.CatalogItem, error)
}
