package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogSource discriminates where a catalog item comes from.
type CatalogSource string

const (
	// CatalogSourceStatic marks operator-curated items defined in configuration.
	CatalogSourceStatic CatalogSource = "static"
	// CatalogSourceMarketplace marks supplier listings stored in the database.
	CatalogSourceMarketplace CatalogSource = "marketplace"
)

// Vertical is the marketplace vertical an item is sold under.
type Vertical string

const (
	VerticalProduct   Vertical = "product"
	VerticalService   Vertical = "service"
	VerticalGrocery   Vertical = "grocery"
	VerticalFreelance Vertical = "freelance"
)

// IsValid checks if the Vertical is a known value.
func (v Vertical) IsValid() bool {
	switch v {
	case VerticalProduct, VerticalService, VerticalGrocery, VerticalFreelance:
		return true
	default:
		return false
	}
}

// CatalogItem is the canonical shape of anything that can be put in a cart or wishlist.
// Static and marketplace items are both normalized into it; Source is the discriminant.
type CatalogItem struct {
	ID          string          `json:"id"`
	Source      CatalogSource   `json:"source"`
	Vertical    Vertical        `json:"vertical"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	SupplierID  *uuid.UUID      `json:"supplier_id,omitempty"` // Marketplace only
	Stock       *int            `json:"stock,omitempty"`       // Marketplace only; nil means unlimited
	Delivery    DeliveryProfile `json:"delivery"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsMarketplace reports whether the item is a supplier listing.
func (i *CatalogItem) IsMarketplace() bool {
	return i.Source == CatalogSourceMarketplace
}

// HasStockFor reports whether quantity units can be sold.
func (i *CatalogItem) HasStockFor(quantity int) bool {
	if i.Stock == nil {
		return true
	}

	return *i.Stock >= quantity
}

// ToCartLine normalizes the item into a cart line with the given quantity.
func (i *CatalogItem) ToCartLine(quantity int) CartLineItem {
	line := CartLineItem{
		ID:       i.ID,
		Name:     i.Name,
		Price:    i.Price,
		Quantity: quantity,
		Image:    i.Image,
	}
	if i.SupplierID != nil {
		line.SupplierID = i.SupplierID.String()
	}

	return line
}
