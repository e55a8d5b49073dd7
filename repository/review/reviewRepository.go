package reviewrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Devanshrai2003/book-review-api/model"
)

type Repo interface {
	Create(ctx context.Context, rv *model.Review) error
	ByID(ctx context.Context, id int64) (*model.Review, error)
	ByUserAndBook(ctx context.Context, userID, bookID int64) (*model.Review, error)
	Update(ctx context.Context, id int64, description string, rating int) (*model.Review, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, rv *model.Review) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO reviews (book_id, user_id, description, rating)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		rv.BookID, rv.UserID, rv.Description, rv.Rating,
	).Scan(&rv.ID, &rv.CreatedAt)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Review, error) {
	return r.one(ctx, `
		SELECT id, book_id, user_id, description, rating, created_at
		FROM reviews
		WHERE id = $1`,
		id)
}

func (r *repo) ByUserAndBook(ctx context.Context, userID, bookID int64) (*model.Review, error) {
	return r.one(ctx, `
		SELECT id, book_id, user_id, description, rating, created_at
		FROM reviews
		WHERE user_id = $1 AND book_id = $2`,
		userID, bookID)
}

func (r *repo) Update(ctx context.Context, id int64, description string, rating int) (*model.Review, error) {
	rv := &model.Review{}
	err := r.db.QueryRow(ctx, `
		UPDATE reviews
		SET description = $2, rating = $3
		WHERE id = $1
		RETURNING id, book_id, user_id, description, rating, created_at`,
		id, description, rating,
	).Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.Description, &rv.Rating, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}

func (r *repo) one(ctx context.Context, q string, args ...any) (*model.Review, error) {
	rv := &model.Review{}
	err := r.db.QueryRow(ctx, q, args...).
		Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.Description, &rv.Rating, &rv.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}
