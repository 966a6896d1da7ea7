package entity

import "github.com/shopspring/decimal"

// CartLineItem is one row of a cart. Identity is ID only; there are no variants.
type CartLineItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Image      string          `json:"image,omitempty"`
	SupplierID string          `json:"supplier_id,omitempty"`
}

// Subtotal returns price × quantity.
func (l CartLineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
