package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type locationService struct {
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(locationRepo repository.LocationRepository, logger *slog.Logger) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SetLocation replaces the customer's address context.
// Sending neither address nor coordinate clears it.
func (s *locationService) SetLocation(ctx context.Context, customerID uuid.UUID, input *usecase.SetLocationInput) (*entity.CustomerLocation, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("location is required")
	}

	if input.Coordinate != nil {
		if err := input.Coordinate.Validate(); err != nil {
			return nil, domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
		}
	}

	location := &entity.CustomerLocation{
		CustomerID: customerID,
		Address:    strings.TrimSpace(input.Address),
		Coordinate: input.Coordinate,
		UpdatedAt:  time.Now(),
	}

	if err := s.locationRepo.Upsert(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to save location")
	}

	s.log(ctx).Info("Customer location updated",
		slog.String("customer_id", customerID.String()),
		slog.Bool("has_address", location.Address != ""),
		slog.Bool("has_coordinate", location.Coordinate != nil),
	)

	return location, nil
}

// GetLocation returns the stored location or an empty one
func (s *locationService) GetLocation(ctx context.Context, customerID uuid.UUID) (*entity.CustomerLocation, error) {
	return loadLocation(ctx, s.locationRepo, customerID)
}

// loadLocation treats a missing row as an unset location.
func loadLocation(ctx context.Context, locationRepo repository.LocationRepository, customerID uuid.UUID) (*entity.CustomerLocation, error) {
	location, err := locationRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return &entity.CustomerLocation{CustomerID: customerID}, nil
		}

		return nil, errors.Wrap(err, "failed to load customer location")
	}

	return location, nil
}
