package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitlead/internal/models/db_models"
	"fitlead/internal/models/response_models"
	"fitlead/internal/services"
	"fitlead/pkg/utils"
)

const sessionUserKey = "session_user"

// SessionMiddleware resolves the session cookie against the session store on
// every request. A store failure is logged and the caller is treated as
// anonymous, so protected routes fail closed.
func SessionMiddleware(sessions services.SessionServiceInterface, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie := utils.SessionCookie(c)
		if cookie == "" {
			c.Next()
			return
		}

		user, err := sessions.Resolve(c.Request.Context(), cookie)
		switch {
		case err == nil:
			c.Set(sessionUserKey, user)
		case errors.Is(err, utils.ErrUnauthenticated):
		default:
			logger.Error("session lookup failed", zap.Error(err), zap.String("trace_id", c.GetString(utils.TraceIDKey)))
		}
		c.Next()
	}
}

// CurrentUser returns the session snapshot resolved for this request, if any.
func CurrentUser(c *gin.Context) (*response_models.SessionUser, bool) {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*response_models.SessionUser)
	return user, ok && user != nil
}

// RoleMiddleware lets the request through only when the session role matches.
func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != requiredRole {
			utils.AbortWithError(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RoleMiddleware(db_models.RoleAdmin)
}
