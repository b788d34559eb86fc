package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitlead/internal/models/request_models"
	"fitlead/internal/services"
	"fitlead/pkg/middleware"
	"fitlead/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	sessionTTL     time.Duration
}

func NewAccountController(accountService services.AccountServiceInterface, sessions services.SessionServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
		sessionTTL:     sessions.TTL(),
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account and log it in. The first account becomes the administrator.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 200 {object} map[string]response_models.UserResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, cookie, err := a.accountService.Register(c.Request.Context(), req, utils.SessionCookie(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SetSessionCookie(c, cookie, a.sessionTTL)
	utils.RespondSuccess(c, gin.H{"user": user})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} map[string]response_models.SessionUser
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, cookie, err := a.accountService.Login(c.Request.Context(), req, utils.SessionCookie(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SetSessionCookie(c, cookie, a.sessionTTL)
	utils.RespondSuccess(c, gin.H{"user": user})
}

// Logout godoc
// @Summary Log out
// @Description Destroy the current session. Succeeds without a session too.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	err := a.accountService.Logout(c.Request.Context(), utils.SessionCookie(c))
	utils.ClearSessionCookie(c)
	if err != nil {
		utils.HandleServiceError(c, utils.NewServiceError(utils.ErrStorage, "Logout error"))
		return
	}

	utils.RespondOK(c)
}

// Me godoc
// @Summary Current user
// @Description Return the session's user snapshot
// @Tags Auth
// @Produce json
// @Success 200 {object} response_models.SessionUser
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/me [get]
func (a *AccountController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthenticated)
		return
	}

	utils.RespondSuccess(c, user)
}
