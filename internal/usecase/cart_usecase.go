package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartSummary is a snapshot of a customer's cart
type CartSummary struct {
	Items    []entity.CartLineItem `json:"items"`
	Count    int                   `json:"count"`
	Total    decimal.Decimal       `json:"total"`
	Currency string                `json:"currency"`
}

// CartUsecase defines cart and wishlist use cases for one customer at a time
type CartUsecase interface {
	GetCart(ctx context.Context, customerID uuid.UUID) (*CartSummary, error)

	// AddToCart adds one unit of a catalog item after checking it can be delivered
	AddToCart(ctx context.Context, customerID uuid.UUID, itemID string) (*CartSummary, error)

	// UpdateQuantity sets a line's quantity; zero or less removes the line
	UpdateQuantity(ctx context.Context, customerID uuid.UUID, itemID string, quantity int) (*CartSummary, error)

	RemoveFromCart(ctx context.Context, customerID uuid.UUID, itemID string) (*CartSummary, error)
	ClearCart(ctx context.Context, customerID uuid.UUID) error

	GetWishlist(ctx context.Context, customerID uuid.UUID) ([]entity.CatalogItem, error)
	AddToWishlist(ctx context.Context, customerID uuid.UUID, itemID string) ([]entity.CatalogItem, error)
	RemoveFromWishlist(ctx context.Context, customerID uuid.UUID, itemID string) ([]entity.CatalogItem, error)

	// MoveToCart adds a wishlist item to the cart and removes it from the wishlist
	MoveToCart(ctx context.Context, customerID uuid.UUID, itemID string) (*CartSummary, error)
}
