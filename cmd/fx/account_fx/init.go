package account_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"fitlead/internal/config"
	"fitlead/internal/infra"
	"fitlead/internal/repositories"
	"fitlead/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideAccountService, provideAccountRepo),
	fx.Invoke(registerBootstrapAdmin),
)

func provideAccountRepo(gw infra.Gateway) repositories.AccountRepository {
	return repositories.NewAccountRepository(gw)
}

func provideAccountService(accountRepo repositories.AccountRepository, sessions services.SessionServiceInterface, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, sessions, logger)
}

func registerBootstrapAdmin(lc fx.Lifecycle, cfg *config.Config, accounts services.AccountServiceInterface, logger *zap.Logger) {
	if !cfg.HasBootstrapAdmin() {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := accounts.EnsureBootstrapAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
			if err != nil {
				return err
			}
			if created {
				logger.Info("bootstrap admin created", zap.String("email", cfg.AdminEmail))
			}
			return nil
		},
	})
}
