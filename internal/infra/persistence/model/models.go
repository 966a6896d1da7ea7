// Package model contains the GORM table definitions.
package model

// All lists every table model in migration order.
func All() []any {
	return []any{
		&ListingModel{},
		&OrderModel{},
		&OrderItemModel{},
		&CustomerLocationModel{},
		&CustomerDeviceModel{},
		&KVEntryModel{},
	}
}
