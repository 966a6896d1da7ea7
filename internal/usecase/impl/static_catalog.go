package impl

import (
	"storefront/config"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

// NewCatalog builds the merged catalog from configured static items and the listing repository.
func NewCatalog(cfg *config.Config, catalogRepo repository.CatalogRepository) (*catalog.Catalog, error) {
	var staticCfg []config.StaticItemConfig
	if cfg.Catalog != nil {
		staticCfg = cfg.Catalog.Static
	}

	items := make([]*entity.CatalogItem, 0, len(staticCfg))
	for _, sc := range staticCfg {
		item, err := staticItemFromConfig(sc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return catalog.New(items, catalogRepo)
}

func staticItemFromConfig(sc config.StaticItemConfig) (*entity.CatalogItem, error) {
	price, err := decimal.NewFromString(sc.Price)
	if err != nil {
		return nil, errors.Wrapf(err, "static catalog item %q: invalid price %q", sc.ID, sc.Price)
	}

	item := &entity.CatalogItem{
		ID:          sc.ID,
		Source:      entity.CatalogSourceStatic,
		Vertical:    entity.Vertical(sc.Vertical),
		Name:        sc.Name,
		Description: sc.Description,
		Price:       price,
		Image:       sc.Image,
		Delivery: entity.DeliveryProfile{
			AvailableEverywhere: sc.AvailableEverywhere,
			Region:              sc.Region,
			DeliveryRadiusKm:    sc.DeliveryRadiusKm,
			NoDelivery:          sc.NoDelivery,
		},
	}
	if sc.Latitude != nil && sc.Longitude != nil {
		item.Delivery.Location = &entity.Coordinate{Lat: *sc.Latitude, Lng: *sc.Longitude}
	}

	return item, nil
}
