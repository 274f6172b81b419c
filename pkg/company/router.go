package company

import (
	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/middleware"
	"github.com/takimet-io/takimet/pkg/model"
)

func Routes(router *gin.RouterGroup, authenticator gin.HandlerFunc, authorization middleware.AuthorizationMiddleware, handler Handler) {
	router.GET("/companies/:id", handler.FindById)

	tokenAuthenticationRouter := router.Group("")
	tokenAuthenticationRouter.Use(authenticator)
	tokenAuthenticationRouter.POST("/companies", authorization.RequireRole(model.RoleCompany), handler.Register)
	tokenAuthenticationRouter.GET("/companies/my-company", handler.MyCompany)
	tokenAuthenticationRouter.PUT("/companies/:id", handler.Update)
	tokenAuthenticationRouter.POST("/companies/:id/logo", handler.UploadLogo)

	administratorRouter := tokenAuthenticationRouter.Group("/admin")
	administratorRouter.Use(authorization.RequireRole(model.RoleAdministrator))
	administratorRouter.GET("/companies", handler.List)
	administratorRouter.POST("/companies/:id/approve", handler.Approve)
	administratorRouter.POST("/companies/:id/deny", handler.Reject)
	administratorRouter.PUT("/companies/:id/status", handler.SetStatus)
}
