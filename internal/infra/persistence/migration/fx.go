package migration

import (
	"context"
	"log/slog"

	"opencircle/config"
	"opencircle/internal/domain/repository"
	"opencircle/internal/errors"
	"opencircle/internal/seed"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines what applying the schema needs.
type Params struct {
	fx.In
	fx.Lifecycle

	DB        *gorm.DB
	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// Module applies pending migrations and seeds the roles when the app starts.
// It must come after the store is provided so the connection is pinged first.
func Module() fx.Option {
	return fx.Module("migrations", fx.Invoke(register))
}

func register(params Params) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get sql.DB for migrations")
			}

			table := ""
			if params.Config.Database != nil {
				table = params.Config.Database.MigrationsTable
			}
			if err := Run(sqlDB, table); err != nil {
				return err
			}

			roles, err := seed.EnsureRoles(ctx, params.TxManager)
			if err != nil {
				return err
			}

			params.Logger.Info("Schema is up to date", slog.String("migrationsTable", table), slog.Int("roles", len(roles)))

			return nil
		},
	})
}
