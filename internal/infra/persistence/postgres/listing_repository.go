package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultListingLimit = 200

// listingRepository implements repository.CatalogRepository over the listings table.
type listingRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for listingRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &listingRepository{
		db: db,
	}
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, item *entity.CatalogItem) error {
	listingM, err := fromListingDomain(item)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("listing violates a table constraint")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	item.ID = listingM.ID.String()
	item.Source = entity.CatalogSourceMarketplace
	item.CreatedAt = listingM.CreatedAt
	item.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a listing by its ID.
func (repo *listingRepository) FindByID(ctx context.Context, id string) (*entity.CatalogItem, error) {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrListingNotFound
	}

	var listingM model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", listingID).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindByIDs retrieves all listings among ids; non-UUID and unknown IDs are skipped.
func (repo *listingRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.CatalogItem, error) {
	listingIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if parsed, err := uuid.Parse(id); err == nil {
			listingIDs = append(listingIDs, parsed)
		}
	}
	if len(listingIDs) == 0 {
		return []*entity.CatalogItem{}, nil
	}

	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", listingIDs).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by IDs")
	}

	return toListingDomains(listingModels), nil
}

// List retrieves listings, optionally narrowed by vertical and origin bounding box.
func (repo *listingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]*entity.CatalogItem, error) {
	query := repo.db.WithContext(ctx).Model(&model.ListingModel{})

	if filter.Vertical != nil {
		query = query.Where("vertical = ?", string(*filter.Vertical))
	}

	// Radius listings outside every box cannot reach the customer; everything
	// else still needs the evaluator.
	if len(filter.Bounds) > 0 {
		boxes := make([]string, 0, len(filter.Bounds))
		args := make([]any, 0, 4*len(filter.Bounds))
		for _, b := range filter.Bounds {
			boxes = append(boxes, "(latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?)")
			args = append(args, b.Min.Lat(), b.Max.Lat(), b.Min.Lon(), b.Max.Lon())
		}
		query = query.Where(
			"((latitude IS NULL OR longitude IS NULL OR delivery_radius_km IS NULL OR available_everywhere OR no_delivery OR (region IS NOT NULL AND region <> '')) OR "+
				strings.Join(boxes, " OR ")+")",
			args...,
		)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListingLimit
	}

	var listingModels []*model.ListingModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return toListingDomains(listingModels), nil
}

// ListBySupplier retrieves all listings for a supplier.
func (repo *listingRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.CatalogItem, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by supplier")
	}

	return toListingDomains(listingModels), nil
}

// DecrementStock subtracts quantity from a listing's stock in a single conditional update.
func (repo *listingRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrListingNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND stock IS NOT NULL AND stock >= ?", listingID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	// Distinguish unlimited stock and missing rows from a shortfall
	var listingM model.ListingModel
	if err := repo.db.WithContext(ctx).
		Select("id", "stock").
		Where("id = ?", listingID).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to load listing stock")
	}
	if listingM.Stock == nil {
		return nil
	}

	return repository.ErrInsufficientStock
}

// --- Mapper Functions ---

func toListingDomains(listingModels []*model.ListingModel) []*entity.CatalogItem {
	items := make([]*entity.CatalogItem, 0, len(listingModels))
	for _, listingM := range listingModels {
		items = append(items, toListingDomain(listingM))
	}

	return items
}

// toListingDomain converts a GORM ListingModel to a normalized marketplace CatalogItem.
func toListingDomain(data *model.ListingModel) *entity.CatalogItem {
	if data == nil {
		return nil
	}

	supplierID := data.SupplierID
	item := &entity.CatalogItem{
		ID:          data.ID.String(),
		Source:      entity.CatalogSourceMarketplace,
		Vertical:    entity.Vertical(data.Vertical),
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		SupplierID:  &supplierID,
		Stock:       data.Stock,
		Delivery: entity.DeliveryProfile{
			AvailableEverywhere: data.AvailableEverywhere,
			DeliveryRadiusKm:    data.DeliveryRadiusKm,
			NoDelivery:          data.NoDelivery,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Region != nil {
		item.Delivery.Region = *data.Region
	}
	if data.Latitude != nil && data.Longitude != nil {
		item.Delivery.Location = &entity.Coordinate{Lat: *data.Latitude, Lng: *data.Longitude}
	}

	return item
}

// fromListingDomain converts a CatalogItem to a GORM ListingModel.
func fromListingDomain(data *entity.CatalogItem) (*model.ListingModel, error) {
	if data.SupplierID == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("listing requires a supplier")
	}

	listingM := &model.ListingModel{
		SupplierID:          *data.SupplierID,
		Vertical:            string(data.Vertical),
		Name:                data.Name,
		Description:         data.Description,
		Price:               data.Price,
		Image:               data.Image,
		Stock:               data.Stock,
		AvailableEverywhere: data.Delivery.AvailableEverywhere,
		DeliveryRadiusKm:    data.Delivery.DeliveryRadiusKm,
		NoDelivery:          data.Delivery.NoDelivery,
	}
	if data.ID != "" {
		id, err := uuid.Parse(data.ID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("listing ID must be a UUID")
		}
		listingM.ID = id
	}
	if region := strings.TrimSpace(data.Delivery.Region); region != "" {
		listingM.Region = &region
	}
	if loc := data.Delivery.Location; loc != nil {
		lat, lng := loc.Lat, loc.Lng
		listingM.Latitude = &lat
		listingM.Longitude = &lng
	}

	return listingM, nil
}
