package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup) {
	router.GET("/health", health)
}

// health status
func health(c *gin.Context) {
	// swagger:route GET /health health
	//
	// Service health
	//
	// responses:
	//   200: Success
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
