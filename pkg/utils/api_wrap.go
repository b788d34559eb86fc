package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TraceIDKey = "trace_id"

type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondOK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		TraceID: traceID(c),
	})
}

// AbortWithError writes the error body and stops the handler chain.
func AbortWithError(c *gin.Context, code int, message string) {
	RespondError(c, code, message)
	c.Abort()
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, PublicMessage(err, "Invalid request"))
	case errors.Is(err, ErrConflict):
		RespondError(c, http.StatusBadRequest, PublicMessage(err, "Already exists"))
	case errors.Is(err, ErrAuth):
		RespondError(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, PublicMessage(err, "Not found"))
	case errors.Is(err, ErrStorage):
		zap.L().Error("storage error",
			zap.Error(err),
			zap.String("trace_id", traceID(c)),
			zap.String("path", c.Request.URL.Path))
		RespondError(c, http.StatusInternalServerError, PublicMessage(err, "Server error"))
	default:
		zap.L().Error("unhandled error",
			zap.Error(err),
			zap.String("trace_id", traceID(c)),
			zap.String("path", c.Request.URL.Path))
		RespondError(c, http.StatusInternalServerError, "Server error")
	}
}
