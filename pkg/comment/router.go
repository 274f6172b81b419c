package comment

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	router.GET("/comments/:eventId", handler.ListForEvent)

	tokenAuthenticationRouter := router.Group("")
	tokenAuthenticationRouter.Use(authenticator)
	tokenAuthenticationRouter.POST("/comments", handler.Create)
	tokenAuthenticationRouter.DELETE("/comments/:id", handler.Delete)
}
