package submission_fx

import (
	"go.uber.org/fx"

	"fitlead/internal/infra"
	"fitlead/internal/repositories"
	"fitlead/internal/services"
)

var Module = fx.Provide(
	provideSubmissionRepository, services.NewSubmissionService)

func provideSubmissionRepository(gw infra.Gateway) repositories.SubmissionRepositoryInterface {
	return repositories.NewSubmissionRepository(gw)
}
