package rsvp

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	router.GET("/rsvps/event/:eventId", handler.ListForEvent)

	tokenAuthenticationRouter := router.Group("")
	tokenAuthenticationRouter.Use(authenticator)
	tokenAuthenticationRouter.POST("/rsvps", handler.Create)
	tokenAuthenticationRouter.GET("/rsvps", handler.List)
	tokenAuthenticationRouter.GET("/rsvps/mine", handler.Mine)
	tokenAuthenticationRouter.PUT("/rsvps/event/:eventId", handler.SetStatus)
	tokenAuthenticationRouter.DELETE("/rsvps/event/:eventId", handler.Remove)
}
