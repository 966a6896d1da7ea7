package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Upsert inserts or replaces a customer's location.
func (repo *locationRepository) Upsert(ctx context.Context, location *entity.CustomerLocation) error {
	locationM := fromLocationDomain(location)
	if locationM.UpdatedAt.IsZero() {
		locationM.UpdatedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"address", "latitude", "longitude", "updated_at"}),
		}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert customer location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByCustomer retrieves a customer's location.
func (repo *locationRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.CustomerLocation, error) {
	var locationM model.CustomerLocationModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer location")
	}

	return toLocationDomain(&locationM), nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.CustomerLocationModel) *entity.CustomerLocation {
	if data == nil {
		return nil
	}

	location := &entity.CustomerLocation{
		CustomerID: data.CustomerID,
		Address:    data.Address,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		location.Coordinate = &entity.Coordinate{Lat: *data.Latitude, Lng: *data.Longitude}
	}

	return location
}

func fromLocationDomain(data *entity.CustomerLocation) *model.CustomerLocationModel {
	locationM := &model.CustomerLocationModel{
		CustomerID: data.CustomerID,
		Address:    data.Address,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Coordinate != nil {
		lat, lng := data.Coordinate.Lat, data.Coordinate.Lng
		locationM.Latitude = &lat
		locationM.Longitude = &lng
	}

	return locationM
}
