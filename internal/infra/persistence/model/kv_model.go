package model

import "time"

// KVEntryModel is the GORM-specific struct for the 'kv_entries' table backing carts and wishlists.
type KVEntryModel struct {
	Key       string `gorm:"type:varchar(255);primary_key"`
	Value     string `gorm:"type:text;not null"`
	Version   int64  `gorm:"not null;default:1"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KVEntryModel) TableName() string {
	return "kv_entries"
}
