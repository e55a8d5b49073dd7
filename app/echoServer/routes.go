package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/Devanshrai2003/book-review-api/app/echoServer/controller/auth"
	"github.com/Devanshrai2003/book-review-api/app/echoServer/controller/book"
	"github.com/Devanshrai2003/book-review-api/app/echoServer/controller/review"
)

type C struct {
	Auth   *auth.Controller
	Book   *book.Controller
	Review *review.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/api")
	pub.POST("/users/signup", c.Auth.Signup)
	pub.POST("/users/login", c.Auth.Login)
	pub.GET("/books", c.Book.List)
	pub.GET("/books/search", c.Book.Search)
	pub.GET("/books/:id", c.Book.Detail)

	// Protected: book creation and the review lifecycle require identity.
	prot := e.Group("/api", JWTAuth(c.JWTSecret))
	prot.POST("/books", c.Book.Create)
	prot.POST("/books/:id/reviews", c.Review.Post)
	prot.PUT("/reviews/:id", c.Review.Update)
	prot.DELETE("/reviews/:id", c.Review.Delete)
}
