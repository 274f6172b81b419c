// Package classification Takimet.
//
// Event discovery platform: companies publish events, users RSVP and comment,
// administrators moderate company registrations.
//
//	Version: 0.1.0
//	Contact: <info@takimet.io> https://github.com/takimet-io/takimet
//
//	Consumes:
//	  - application/json
//	  - multipart/form-data
//
//	Produces:
//	  - application/json
//
//	SecurityDefinitions:
//	  oauth2:
//	    type: oauth2
//	    tokenUrl: /api/tokens
//	    refreshUrl: /api/refresh
//	    flow: password
//
// swagger:meta
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/takimet-io/takimet/internal/handler"
	internalLog "github.com/takimet-io/takimet/internal/log"
	"github.com/takimet-io/takimet/internal/middleware"
	"github.com/takimet-io/takimet/internal/server"
	"github.com/takimet-io/takimet/pkg/category"
	"github.com/takimet-io/takimet/pkg/comment"
	"github.com/takimet-io/takimet/pkg/company"
	"github.com/takimet-io/takimet/pkg/config"
	"github.com/takimet-io/takimet/pkg/event"
	"github.com/takimet-io/takimet/pkg/mail"
	"github.com/takimet-io/takimet/pkg/rsvp"
	"github.com/takimet-io/takimet/pkg/stats"
	"github.com/takimet-io/takimet/pkg/storage"
	"github.com/takimet-io/takimet/pkg/token"
	"github.com/takimet-io/takimet/pkg/user"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.New(internalLog.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	cfg := config.New()

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	db, err := storage.NewDatabase(cfg.Postgresql)
	if err != nil {
		return err
	}

	redis, err := storage.NewRedis(cfg.Redis)
	if err != nil {
		return err
	}

	objectStore, err := storage.NewObjectStore(logger, cfg.ObjectStore)
	if err != nil {
		return err
	}

	privateKey, err := cfg.Authentication.Keys.GetPrivateKey()
	if err != nil {
		return err
	}

	tokenRepository := token.NewRepository(redis)
	tokenService := token.NewService(
		logger,
		tokenRepository,
		privateKey,
		cfg.Authentication.AccessTokenExpirationSeconds,
		cfg.Authentication.RefreshTokenSecretKey,
		cfg.Authentication.RefreshTokenExpirationSeconds,
		cfg.Authentication.RefreshTokenRememberMeExpirationSeconds,
	)

	userRepository := user.NewRepository(db)
	userService := user.NewService(userRepository)
	userHandler := user.NewHandler(
		userService,
		tokenService,
		cfg.Hostname,
		cfg.Authentication.AccessTokenExpirationSeconds,
		cfg.Authentication.RefreshTokenExpirationSeconds,
		cfg.Authentication.RefreshTokenRememberMeExpirationSeconds,
	)

	mailer := mail.NewMailer(cfg.SMTP)

	companyRepository := company.NewRepository(db)
	companyService := company.NewService(logger, companyRepository, objectStore, mailer)
	companyHandler := company.NewHandler(companyService)

	eventRepository := event.NewRepository(db)
	eventService := event.NewService(logger, eventRepository, objectStore)
	eventHandler := event.NewHandler(eventService)

	categoryRepository := category.NewRepository(db)
	categoryService := category.NewService(categoryRepository)
	categoryHandler := category.NewHandler(categoryService)

	if err := categoryService.Seed(context.Background()); err != nil {
		return err
	}

	rsvpRepository := rsvp.NewRepository(db)
	rsvpService := rsvp.NewService(rsvpRepository, eventService, companyService)
	rsvpHandler := rsvp.NewHandler(rsvpService)

	commentRepository := comment.NewRepository(db)
	commentService := comment.NewService(commentRepository, eventService)
	commentHandler := comment.NewHandler(commentService)

	statsRepository := stats.NewRepository(db)
	statsService := stats.NewService(statsRepository)
	statsHandler := stats.NewHandler(statsService)

	authentication := middleware.NewAuthentication(&privateKey.PublicKey)
	authorization := middleware.NewAuthorization(logger, companyService)

	r := server.GetEngine(logger, cfg.BasePath, authentication, authorization, server.Handlers{
		User:     userHandler,
		Company:  companyHandler,
		Event:    eventHandler,
		Category: categoryHandler,
		RSVP:     rsvpHandler,
		Comment:  commentHandler,
		Stats:    statsHandler,
	})
	return r.Run()
}
