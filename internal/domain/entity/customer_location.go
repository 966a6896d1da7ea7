package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerLocation is the address context a customer browses and checks out with.
// Both fields are optional; a customer with neither set has no location yet.
type CustomerLocation struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	Address    string      `json:"address,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// IsSet reports whether any location information is present.
func (l *CustomerLocation) IsSet() bool {
	if l == nil {
		return false
	}

	return l.Address != "" || l.Coordinate != nil
}
