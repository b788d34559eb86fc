package controllers_fx

import (
	"go.uber.org/fx"

	"fitlead/internal/api/controllers"
	"fitlead/internal/config"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSubmissionController),
	fx.Provide(controllers.NewVisitController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideStaticController))

func provideStaticController(cfg *config.Config) *controllers.StaticController {
	return controllers.NewStaticController(cfg.StaticDir)
}
