// Package main book review API.
//
// @title           Book Review API
// @version         1.0
// @description     Book review service (users, books, reviews).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Devanshrai2003/book-review-api/app/echoServer"
	authctrl "github.com/Devanshrai2003/book-review-api/app/echoServer/controller/auth"
	bookctrl "github.com/Devanshrai2003/book-review-api/app/echoServer/controller/book"
	reviewctrl "github.com/Devanshrai2003/book-review-api/app/echoServer/controller/review"
	"github.com/Devanshrai2003/book-review-api/app/echoServer/validation"
	"github.com/Devanshrai2003/book-review-api/config"
	bookrepo "github.com/Devanshrai2003/book-review-api/repository/book"
	reviewrepo "github.com/Devanshrai2003/book-review-api/repository/review"
	userrepo "github.com/Devanshrai2003/book-review-api/repository/user"
	authsvc "github.com/Devanshrai2003/book-review-api/service/auth"
	booksvc "github.com/Devanshrai2003/book-review-api/service/book"
	reviewsvc "github.com/Devanshrai2003/book-review-api/service/review"
	"github.com/Devanshrai2003/book-review-api/util/database"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: single pgx pool for the process lifetime
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db.Pool)
	br := bookrepo.New(db.Pool)
	rr := reviewrepo.New(db.Pool)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	bs := booksvc.New(br)
	rs := reviewsvc.New(rr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	reviewC := &reviewctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status": "Book Review API is live",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Book:   bookC,
		Review: reviewC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
