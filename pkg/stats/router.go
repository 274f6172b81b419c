package stats

import (
	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/middleware"
	"github.com/takimet-io/takimet/pkg/model"
)

func Routes(router *gin.RouterGroup, authenticator gin.HandlerFunc, authorization middleware.AuthorizationMiddleware, handler Handler) {
	router.GET("/stats", authenticator, authorization.RequireRole(model.RoleAdministrator), handler.Dashboard)
}
