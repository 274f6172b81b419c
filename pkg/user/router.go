package user

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, authenticator gin.HandlerFunc, handler Handler) {
	router.POST("/users", handler.SignUp)
	router.POST("/tokens", handler.SignIn)
	router.POST("/refresh", handler.RefreshToken)

	tokenAuthenticationRouter := router.Group("")
	tokenAuthenticationRouter.Use(authenticator)
	tokenAuthenticationRouter.GET("/me", handler.Me)
	tokenAuthenticationRouter.DELETE("/tokens", handler.SignOut)
}
