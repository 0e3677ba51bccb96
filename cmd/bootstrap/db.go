package bootstrap

import (
	"context"

	"gembank/internal/infra/db"
	"gembank/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(
		seedDemoProfiles,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if err := db.InitSchema(context.Background(), pool); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func seedDemoProfiles(cfg config.Config, pool *pgxpool.Pool) error {
	if !cfg.Seed.Demo {
		return nil
	}
	return db.SeedDemoProfiles(context.Background(), pool)
}
