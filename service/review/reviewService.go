package reviewsvc

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Devanshrai2003/book-review-api/model"
	reviewrepo "github.com/Devanshrai2003/book-review-api/repository/review"
)

var (
	ErrBadInput        = errors.New("bad input")
	ErrAlreadyReviewed = errors.New("book already reviewed by this user")
	ErrNotOwned        = errors.New("review does not exist or is not owned by caller")
	ErrBookNotFound    = errors.New("book not found")
)

type Service interface {
	Post(ctx context.Context, bookID, userID int64, description string, rating int) (*model.Review, error)
	Update(ctx context.Context, reviewID, userID int64, description string, rating int) (*model.Review, error)
	Delete(ctx context.Context, reviewID, userID int64) error
}

type service struct{ rr reviewrepo.Repo }

func New(rr reviewrepo.Repo) Service { return &service{rr: rr} }

// Post creates a review, rejecting a second review by the same user on
// the same book. The pre-check is an early exit only; the store's
// unique (user_id, book_id) constraint settles races between two
// concurrent posts, so a unique violation at insert time is the same
// conflict, never an internal error.
func (s *service) Post(ctx context.Context, bookID, userID int64, description string, rating int) (*model.Review, error) {
	if description == "" || rating == 0 {
		return nil, ErrBadInput
	}

	existing, err := s.rr.ByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	rv := &model.Review{
		BookID:      bookID,
		UserID:      userID,
		Description: description,
		Rating:      rating,
	}
	if err := s.rr.Create(ctx, rv); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return nil, ErrAlreadyReviewed
			case pgerrcode.ForeignKeyViolation:
				return nil, ErrBookNotFound
			}
		}
		return nil, err
	}
	return rv, nil
}

// Update overwrites description and rating of a review owned by the
// caller. A review that is absent or owned by someone else fails before
// any mutation happens.
func (s *service) Update(ctx context.Context, reviewID, userID int64, description string, rating int) (*model.Review, error) {
	if description == "" || rating == 0 {
		return nil, ErrBadInput
	}

	rv, err := s.rr.ByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv == nil || rv.UserID != userID {
		return nil, ErrNotOwned
	}

	return s.rr.Update(ctx, reviewID, description, rating)
}

func (s *service) Delete(ctx context.Context, reviewID, userID int64) error {
	rv, err := s.rr.ByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rv == nil || rv.UserID != userID {
		return ErrNotOwned
	}
	return s.rr.Delete(ctx, reviewID)
}

func Code(err error) error {
	for _, known := range []error{ErrBadInput, ErrAlreadyReviewed, ErrNotOwned, ErrBookNotFound} {
		if errors.Is(err, known) {
			return known
		}
	}
	return nil
}
