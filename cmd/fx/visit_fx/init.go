package visit_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"fitlead/internal/config"
	"fitlead/internal/repositories"
	"fitlead/internal/services"
)

var Module = fx.Provide(
	repositories.NewVisitRepository,
	services.NewVisitService,
	provideVisitRecorder,
)

func provideVisitRecorder(lc fx.Lifecycle, repo repositories.VisitRepository, cfg *config.Config, logger *zap.Logger) *services.VisitRecorder {
	recorder := services.NewVisitRecorder(repo, logger, cfg.VisitQueueSize, cfg.VisitWorkers)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			recorder.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return recorder.Stop(ctx)
		},
	})
	return recorder
}
