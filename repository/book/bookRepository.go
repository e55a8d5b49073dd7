package bookrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Devanshrai2003/book-review-api/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context, author, genre string, limit, offset int) ([]model.Book, error)
	Search(ctx context.Context, query string) ([]model.Book, error)
	ByID(ctx context.Context, id int64) (*model.Book, error)
	Reviews(ctx context.Context, bookID int64, limit, offset int) ([]model.BookReview, error)
	AverageRating(ctx context.Context, bookID int64) (float64, error)
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO books (title, author, genre, created_by_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		b.Title, b.Author, b.Genre, b.CreatedByID,
	).Scan(&b.ID)
}

func (r *repo) List(ctx context.Context, author, genre string, limit, offset int) ([]model.Book, error) {
	var (
		where []string
		args  []any
	)
	if author != "" {
		args = append(args, "%"+author+"%")
		where = append(where, fmt.Sprintf("author ILIKE $%d", len(args)))
	}
	if genre != "" {
		args = append(args, "%"+genre+"%")
		where = append(where, fmt.Sprintf("genre ILIKE $%d", len(args)))
	}

	q := `SELECT id, title, author, genre, created_by_id FROM books`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY id LIMIT $%d", len(args))
	args = append(args, offset)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *repo) Search(ctx context.Context, query string) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, author, genre, created_by_id
		FROM books
		WHERE title ILIKE $1 OR author ILIKE $1
		ORDER BY id`,
		"%"+query+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Book, error) {
	b := &model.Book{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, author, genre, created_by_id
		FROM books
		WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.CreatedByID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) Reviews(ctx context.Context, bookID int64, limit, offset int) ([]model.BookReview, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.description, r.rating, u.id, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.book_id = $1
		ORDER BY r.id
		LIMIT $2 OFFSET $3`,
		bookID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BookReview
	for rows.Next() {
		var rv model.BookReview
		if err := rows.Scan(&rv.ID, &rv.Content, &rv.Rating, &rv.User.ID, &rv.User.Username); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *repo) AverageRating(ctx context.Context, bookID int64) (float64, error) {
	var avg float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(AVG(rating), 0)
		FROM reviews
		WHERE book_id = $1`,
		bookID,
	).Scan(&avg)
	return avg, err
}

func scanBooks(rows pgx.Rows) ([]model.Book, error) {
	var out []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.CreatedByID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
