package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SetLocationInput represents the customer's current address context
type SetLocationInput struct {
	Address    string             `json:"address" validate:"max=500"`
	Coordinate *entity.Coordinate `json:"coordinate,omitempty"`
}

// LocationUsecase defines the interface for customer location use cases
type LocationUsecase interface {
	SetLocation(ctx context.Context, customerID uuid.UUID, input *SetLocationInput) (*entity.CustomerLocation, error)

	// GetLocation returns an empty location when none was ever set
	GetLocation(ctx context.Context, customerID uuid.UUID) (*entity.CustomerLocation, error)
}
