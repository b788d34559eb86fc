package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitlead/internal/infra"
	"fitlead/pkg/utils"
)

type HealthController struct {
	gw     infra.Gateway
	logger *zap.Logger
}

func NewHealthController(gw infra.Gateway, logger *zap.Logger) *HealthController {
	return &HealthController{gw: gw, logger: logger}
}

func (h *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready checks that the database answers.
func (h *HealthController) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.gw.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
