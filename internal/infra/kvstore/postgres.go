package kvstore

import (
	"context"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// postgresStore keeps values in the kv_entries table.
type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore creates a store over the kv_entries table.
func NewPostgresStore(db *gorm.DB) service.VersionedKVStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, _, found, err := s.GetVersioned(ctx, key)

	return value, found, err
}

// GetVersioned reads from the primary so a basket is never rehydrated from a lagging replica.
func (s *postgresStore) GetVersioned(ctx context.Context, key string) (string, int64, bool, error) {
	var entry model.KVEntryModel

	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("key = ?", key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", 0, false, nil
	}
	if err != nil {
		return "", 0, false, errors.Wrapf(err, "failed to read kv entry %s", key)
	}

	return entry.Value, entry.Version, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string) error {
	entry := &model.KVEntryModel{
		Key:       key,
		Value:     value,
		Version:   1,
		UpdatedAt: time.Now(),
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      value,
				"version":    gorm.Expr("kv_entries.version + 1"),
				"updated_at": entry.UpdatedAt,
			}),
		}).
		Create(entry).Error; err != nil {
		return errors.Wrapf(err, "failed to write kv entry %s", key)
	}

	return nil
}

// CompareAndSet inserts when expected is 0 and otherwise updates the row only
// while its version still matches.
func (s *postgresStore) CompareAndSet(ctx context.Context, key, value string, expected int64) (int64, error) {
	now := time.Now()
	db := s.db.WithContext(ctx)

	var result *gorm.DB
	if expected == 0 {
		result = db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.KVEntryModel{Key: key, Value: value, Version: 1, UpdatedAt: now})
	} else {
		result = db.Model(&model.KVEntryModel{}).
			Where("key = ? AND version = ?", key, expected).
			Updates(map[string]any{
				"value":      value,
				"version":    expected + 1,
				"updated_at": now,
			})
	}
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "failed to write kv entry %s", key)
	}
	if result.RowsAffected == 0 {
		return 0, service.ErrVersionConflict
	}

	return expected + 1, nil
}
