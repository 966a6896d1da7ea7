package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/availability"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/geo"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type catalogService struct {
	catalog      *catalog.Catalog
	catalogRepo  repository.CatalogRepository
	locationRepo repository.LocationRepository
	maxRadiusKm  float64
	logger       *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	cfg *config.Config,
	cat *catalog.Catalog,
	catalogRepo repository.CatalogRepository,
	locationRepo repository.LocationRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	var maxRadiusKm float64
	if cfg.Catalog != nil {
		maxRadiusKm = cfg.Catalog.MaxDeliveryRadiusKm
	}

	return &catalogService{
		catalog:      cat,
		catalogRepo:  catalogRepo,
		locationRepo: locationRepo,
		maxRadiusKm:  maxRadiusKm,
		logger:       logger,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// List returns both catalog sources annotated with availability for the customer
func (s *catalogService) List(ctx context.Context, customerID uuid.UUID, query usecase.CatalogQuery) ([]*usecase.CatalogEntry, error) {
	location, err := loadLocation(ctx, s.locationRepo, customerID)
	if err != nil {
		return nil, err
	}

	// Only the available-only view may drop listings; the full view must still
	// show far-away ones as outside their radius.
	var bounds []orb.Bound
	if query.OnlyAvailable && location.Coordinate != nil && s.maxRadiusKm > 0 {
		bounds = geo.BoundsAround(*location.Coordinate, s.maxRadiusKm)
	}

	items, err := s.catalog.Browse(ctx, query.Vertical, bounds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse catalog")
	}

	entries := make([]*usecase.CatalogEntry, 0, len(items))
	for _, item := range items {
		decision := availability.Evaluate(item.Delivery, location.Address, location.Coordinate)
		if query.OnlyAvailable && !decision.Eligible {
			continue
		}
		entries = append(entries, &usecase.CatalogEntry{
			Item:         item,
			Availability: decision,
		})
	}

	s.log(ctx).Debug("Catalog listed",
		slog.Int("browsed", len(items)),
		slog.Int("returned", len(entries)),
		slog.Bool("only_available", query.OnlyAvailable),
	)

	return entries, nil
}

// Get returns one catalog item
func (s *catalogService) Get(ctx context.Context, id string) (*entity.CatalogItem, error) {
	return s.catalog.Find(ctx, id)
}

// CreateListing validates and stores a marketplace listing
func (s *catalogService) CreateListing(ctx context.Context, supplierID uuid.UUID, input *usecase.CreateListingInput) (*entity.CatalogItem, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("listing is required")
	}
	if !input.Vertical.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown vertical: " + string(input.Vertical))
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !input.Price.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	}
	if err := input.Delivery.Validate(s.maxRadiusKm); err != nil {
		if errors.Is(err, entity.ErrInvalidCoordinate) {
			return nil, domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	item := &entity.CatalogItem{
		Source:      entity.CatalogSourceMarketplace,
		Vertical:    input.Vertical,
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		SupplierID:  &supplierID,
		Stock:       input.Stock,
		Delivery:    input.Delivery,
	}

	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log(ctx).Info("Listing created",
		slog.String("listing_id", item.ID),
		slog.String("supplier_id", supplierID.String()),
		slog.String("vertical", string(item.Vertical)),
	)

	return item, nil
}

// ListSupplierListings returns a supplier's own listings
func (s *catalogService) ListSupplierListings(ctx context.Context, supplierID uuid.UUID) ([]*entity.CatalogItem, error) {
	items, err := s.catalogRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list supplier listings")
	}

	return items, nil
}
