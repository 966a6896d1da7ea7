package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a customer has never set a location.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository stores each customer's current location context.
type LocationRepository interface {
	// Upsert replaces the customer's location.
	Upsert(ctx context.Context, location *entity.CustomerLocation) error

	// FindByCustomer retrieves the customer's location.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.CustomerLocation, error)
}
