// Command migrate creates or updates the storefront schema and exits.
package main

import (
	"context"
	"log/slog"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(runMigrations),
	).Run()
}

func runMigrations(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Database schema migrated")

			return params.Shutdown()
		},
	})
}
