package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Devanshrai2003/book-review-api/app/echoServer/jwtx"
	booksvc "github.com/Devanshrai2003/book-review-api/service/book"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/books  (protected)
// @Summary      Create book
// @Tags         books
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateBookReq  true  "Book payload"
// @Success      201  {object}  model.Book
// @Failure      400  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/books [post]
func (h *Controller) Create(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing one or more input fields"})
	}

	b, err := h.Svc.Create(c.Request().Context(), uid, req.Title, req.Author, req.Genre)
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing one or more input fields"})
		}
		h.Log.Error("book create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to add book"})
	}
	return c.JSON(http.StatusCreated, b)
}

// GET /api/books  (public)
// @Summary      List books
// @Tags         books
// @Produce      json
// @Param        page    query  int     false  "Page (default 1)"
// @Param        limit   query  int     false  "Page size (default 10)"
// @Param        author  query  string  false  "Case-insensitive author filter"
// @Param        genre   query  string  false  "Case-insensitive genre filter"
// @Success      200  {array}  model.Book
// @Router       /api/books [get]
func (h *Controller) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	rows, err := h.Svc.List(c.Request().Context(), booksvc.ListParams{
		Page:   page,
		Limit:  limit,
		Author: c.QueryParam("author"),
		Genre:  c.QueryParam("genre"),
	})
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch books"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/books/search  (public)
// @Summary      Search books by title or author
// @Tags         books
// @Produce      json
// @Param        query  query  string  true  "Search term"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/books/search [get]
func (h *Controller) Search(c echo.Context) error {
	rows, err := h.Svc.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Search query is required"})
		}
		h.Log.Error("book search error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to search books"})
	}
	return c.JSON(http.StatusOK, echo.Map{"books": rows})
}

// GET /api/books/:id  (public)
// @Summary      Book detail with paginated reviews and average rating
// @Tags         books
// @Produce      json
// @Param        id     path   int  true   "Book id"
// @Param        page   query  int  false  "Reviews page (default 1)"
// @Param        limit  query  int  false  "Reviews page size (default 5)"
// @Success      200  {object}  model.BookDetail
// @Failure      404  {object}  map[string]any
// @Router       /api/books/{id} [get]
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	d, err := h.Svc.Detail(c.Request().Context(), id, page, limit)
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
		}
		h.Log.Error("book detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch book"})
	}
	return c.JSON(http.StatusOK, d)
}
