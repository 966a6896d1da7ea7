package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
// Each row is a supplier's marketplace item; its delivery profile is flattened into columns.
type ListingModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SupplierID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Vertical            string          `gorm:"type:varchar(20);not null;index"`
	Name                string          `gorm:"type:varchar(255);not null"`
	Description         string          `gorm:"type:text"`
	Price               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Image               string          `gorm:"type:varchar(512)"`
	Stock               *int            `gorm:"check:stock >= 0"` // NULL means unlimited
	AvailableEverywhere bool            `gorm:"not null;default:false"`
	Region              *string         `gorm:"type:varchar(255)"`
	Latitude            *float64        `gorm:"type:double precision;index:idx_listings_origin"`
	Longitude           *float64        `gorm:"type:double precision;index:idx_listings_origin"`
	DeliveryRadiusKm    *float64        `gorm:"type:double precision"`
	NoDelivery          bool            `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
