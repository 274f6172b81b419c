package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"github.com/takimet-io/takimet/internal/errdef"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorHandler maps classified errors to HTTP status codes and renders the
// common error envelope. Unclassified errors become a generic 500; the detail
// stays in the server log only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}
		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.JSON(status, errorResponse{Message: err.Error()})
			return
		}

		switch {
		case errdef.IsBadRequest(err):
			c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
		case errdef.IsUnauthorized(err):
			c.JSON(http.StatusUnauthorized, errorResponse{Message: err.Error()})
		case errdef.IsForbidden(err):
			c.JSON(http.StatusForbidden, errorResponse{Message: err.Error()})
		case errdef.IsNotFound(err):
			c.JSON(http.StatusNotFound, errorResponse{Message: err.Error()})
		case errdef.IsConflict(err):
			c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
		case errdef.IsDuplicated(err):
			c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
		case errdef.IsUnsupportedMediaType(err):
			c.JSON(http.StatusUnsupportedMediaType, errorResponse{Message: err.Error()})
		default:
			id := sloggin.GetRequestID(c)
			message := "something went wrong. We'll look into it if you send us the id " + id
			c.JSON(http.StatusInternalServerError, errorResponse{Message: message})
		}
	}
}
