package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerLocationModel is the GORM-specific struct for the 'customer_locations' table.
// One row per customer.
type CustomerLocationModel struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primary_key"`
	Address    string    `gorm:"type:text"`
	Latitude   *float64  `gorm:"type:double precision"`
	Longitude  *float64  `gorm:"type:double precision"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerLocationModel) TableName() string {
	return "customer_locations"
}
