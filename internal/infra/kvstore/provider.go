package kvstore

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// StoreParams holds dependencies for the KVStore, injected by Fx
type StoreParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewKVStore creates the basket KVStore selected by configuration
func NewKVStore(params StoreParams) (service.KVStore, error) {
	cfg := params.Config.Basket
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("Basket provider not configured, carts will not survive restarts")

		return NewMemoryStore(), nil
	}

	switch cfg.Provider {
	case constants.KVProviderMemory:
		logger.Info("Using in-memory basket store")

		return NewMemoryStore(), nil

	case constants.KVProviderPostgres:
		if params.DB == nil {
			return nil, errors.New("postgres basket store requires a database connection")
		}
		logger.Info("Using Postgres basket store")

		return NewPostgresStore(params.DB), nil

	case constants.KVProviderDynamoDB:
		if cfg.DynamoDB == nil || cfg.DynamoDB.Table == "" {
			return nil, errors.New("dynamodb table is required for dynamodb provider")
		}
		client, err := NewDynamoDBClient(params.Ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		logger.Info("Using DynamoDB basket store",
			slog.String("table", cfg.DynamoDB.Table),
			slog.String("region", cfg.DynamoDB.Region),
		)

		return NewDynamoDBStore(client, cfg.DynamoDB.Table), nil

	default:
		return nil, errors.Errorf("unknown basket provider: %s", cfg.Provider)
	}
}

// Module provides the basket store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKVStore),
)
