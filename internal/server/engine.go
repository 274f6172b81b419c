package server

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redocMiddleware "github.com/go-openapi/runtime/middleware"
	sloggin "github.com/samber/slog-gin"
	"github.com/takimet-io/takimet/internal/middleware"
	"github.com/takimet-io/takimet/pkg/category"
	"github.com/takimet-io/takimet/pkg/comment"
	"github.com/takimet-io/takimet/pkg/company"
	"github.com/takimet-io/takimet/pkg/event"
	"github.com/takimet-io/takimet/pkg/health"
	"github.com/takimet-io/takimet/pkg/rsvp"
	"github.com/takimet-io/takimet/pkg/stats"
	"github.com/takimet-io/takimet/pkg/user"
)

type Handlers struct {
	User     user.Handler
	Company  company.Handler
	Event    event.Handler
	Category category.Handler
	RSVP     rsvp.Handler
	Comment  comment.Handler
	Stats    stats.Handler
}

func GetEngine(logger *slog.Logger, basePath string, authentication middleware.AuthenticationMiddleware, authorization middleware.AuthorizationMiddleware, handlers Handlers) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationID())
	r.Use(sloggin.New(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	redoc(router, basePath)

	health.Routes(router)
	user.Routes(router, authentication.TokenAuthentication, handlers.User)
	company.Routes(router, authentication.TokenAuthentication, authorization, handlers.Company)
	event.Routes(router, authentication.TokenAuthentication, authorization.RequireVerifiedCompany, handlers.Event)
	category.Routes(router, handlers.Category)
	rsvp.Routes(router, authentication.TokenAuthentication, handlers.RSVP)
	comment.Routes(router, authentication.TokenAuthentication, handlers.Comment)
	stats.Routes(router, authentication.TokenAuthentication, authorization, handlers.Stats)

	return r
}

func redoc(router *gin.RouterGroup, basePath string) {
	router.StaticFile("/swagger.yaml", "./swagger/swagger.yaml")

	redocOpts := redocMiddleware.RedocOpts{
		BasePath: basePath,
		SpecURL:  "./swagger.yaml",
	}
	router.GET("/docs", func(c *gin.Context) {
		redocHandler := redocMiddleware.Redoc(redocOpts, nil)
		redocHandler.ServeHTTP(c.Writer, c.Request)
	})
}
