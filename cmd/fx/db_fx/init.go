package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitlead/internal/config"
	"fitlead/internal/infra"
)

var Module = fx.Provide(
	provideDB,
	infra.NewGateway,
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg)
	if err != nil {
		return nil, err
	}

	if err := infra.Migrate(db, cfg.SessionBackend == config.SessionBackendPostgres); err != nil {
		infra.ClosePostgresql(db, logger)
		return nil, err
	}
	logger.Info("database schema ready")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}
