package session_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"fitlead/internal/config"
	"fitlead/internal/infra"
	"fitlead/internal/repositories"
	"fitlead/internal/services"
	mem "fitlead/pkg/memcache"
	"fitlead/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideSessionRepository, provideCookieSigner, provideSessionService),
	fx.Invoke(registerJanitor),
)

func provideSessionRepository(
	lc fx.Lifecycle,
	cfg *config.Config,
	gw infra.Gateway,
	cache *mem.SessionCache,
	logger *zap.Logger,
) (repositories.SessionRepository, error) {
	switch cfg.SessionBackend {
	case config.SessionBackendMemory:
		logger.Warn("sessions are kept in memory and will not survive a restart")
		return cache, nil
	case config.SessionBackendRedis:
		client, err := infra.InitRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return repositories.NewRedisSessionRepository(client), nil
	default:
		return repositories.NewSessionRepository(gw), nil
	}
}

func provideCookieSigner(cfg *config.Config, logger *zap.Logger) *utils.CookieSigner {
	if cfg.UsesDefaultSecret() {
		logger.Warn("SESSION_SECRET is not set, using the built-in default")
	}
	return utils.NewCookieSigner(cfg.SessionSecret)
}

func provideSessionService(repo repositories.SessionRepository, signer *utils.CookieSigner, cfg *config.Config) services.SessionServiceInterface {
	return services.NewSessionService(repo, signer, cfg.SessionTTL)
}

func registerJanitor(lc fx.Lifecycle, sessions services.SessionServiceInterface, cfg *config.Config, logger *zap.Logger) {
	janitor := services.NewSessionJanitor(sessions, cfg.SessionPurgeInterval, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			janitor.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			janitor.Stop()
			return nil
		},
	})
}
