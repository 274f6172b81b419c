package category

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, handler Handler) {
	router.GET("/event-categories/categories", handler.ListCategories)
	router.GET("/event-categories/events", handler.ListEvents)
}
