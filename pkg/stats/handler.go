package stats

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

func NewHandler(statsService statsService) Handler {
	return Handler{statsService: statsService}
}

type Handler struct {
	statsService statsService
}

type statsService interface {
	Dashboard(ctx context.Context) (Dashboard, error)
}

// Dashboard stats
func (h Handler) Dashboard(c *gin.Context) {
	// swagger:route GET /stats statsDashboard
	//
	// Statistics dashboard
	//
	// Derived platform statistics. Administrators only.
	//
	// responses:
	//   200: Dashboard
	//   401: Error
	//   403: Error
	dashboard, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": dashboard})
}
