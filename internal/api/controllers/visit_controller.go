package controllers

import (
	"github.com/gin-gonic/gin"

	"fitlead/internal/services"
	"fitlead/pkg/utils"
)

type VisitController struct {
	visitService services.VisitServiceInterface
}

func NewVisitController(visitService services.VisitServiceInterface) *VisitController {
	return &VisitController{visitService: visitService}
}

// GetVisits godoc
// @Summary Recent page views and traffic totals
// @Description The 100 most recent visits plus total and distinct-IP counts
// @Tags Visits
// @Produce json
// @Success 200 {object} response_models.VisitReport
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/visits [get]
func (v *VisitController) GetVisits(c *gin.Context) {
	report, err := v.visitService.Report(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report)
}
