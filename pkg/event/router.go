package event

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, authenticator, verifiedCompany gin.HandlerFunc, handler Handler) {
	router.GET("/events", handler.List)
	router.GET("/events/popular", handler.ListPopular)
	router.GET("/events/:id", handler.FindById)

	companyRouter := router.Group("/company-events")
	companyRouter.Use(authenticator, verifiedCompany)
	companyRouter.POST("", handler.Create)
	companyRouter.GET("/my-events", handler.MyEvents)
	companyRouter.PUT("/:id", handler.Update)
	companyRouter.DELETE("/:id", handler.Delete)
}
