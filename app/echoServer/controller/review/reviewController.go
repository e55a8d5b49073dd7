package review

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Devanshrai2003/book-review-api/app/echoServer/jwtx"
	reviewsvc "github.com/Devanshrai2003/book-review-api/service/review"
)

type Controller struct {
	Svc reviewsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/books/:id/reviews  (protected)
// @Summary      Post a review on a book
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  int            true  "Book id"
// @Param        payload  body  PostReviewReq  true  "Review payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any "already reviewed"
// @Router       /api/books/{id}/reviews [post]
func (h *Controller) Post(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req PostReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing one or more input fields"})
	}

	rv, err := h.Svc.Post(c.Request().Context(), bookID, uid, req.Description, req.Rating)
	if err != nil {
		switch reviewsvc.Code(err) {
		case reviewsvc.ErrAlreadyReviewed:
			return c.JSON(http.StatusConflict, echo.Map{"message": "This book has already been reviewed by you"})
		case reviewsvc.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
		case reviewsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing one or more input fields"})
		default:
			h.Log.Error("review post error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to post review"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Review posted successfully",
		"review":  rv,
	})
}

// PUT /api/reviews/:id  (protected)
// @Summary      Update own review
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  int              true  "Review id"
// @Param        payload  body  UpdateReviewReq  true  "Review payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any "not found or not owned"
// @Router       /api/reviews/{id} [put]
func (h *Controller) Update(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req UpdateReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing one or more input fields"})
	}

	rv, err := h.Svc.Update(c.Request().Context(), id, uid, req.Description, req.Rating)
	if err != nil {
		switch reviewsvc.Code(err) {
		case reviewsvc.ErrNotOwned:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "The review either does not exist or is not associated with your account",
			})
		case reviewsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing one or more input fields"})
		default:
			h.Log.Error("review update error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update review"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Review updated successfully",
		"review":  rv,
	})
}

// DELETE /api/reviews/:id  (protected)
// @Summary      Delete own review
// @Tags         reviews
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Review id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]any "not found or not owned"
// @Router       /api/reviews/{id} [delete]
func (h *Controller) Delete(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := h.Svc.Delete(c.Request().Context(), id, uid); err != nil {
		switch reviewsvc.Code(err) {
		case reviewsvc.ErrNotOwned:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Not allowed to delete this review"})
		default:
			h.Log.Error("review delete error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete review"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Review deleted"})
}
