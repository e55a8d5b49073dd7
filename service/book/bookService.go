package booksvc

import (
	"context"
	"errors"
	"strings"

	"github.com/Devanshrai2003/book-review-api/model"
)

var (
	ErrBadInput = errors.New("invalid payload")
	ErrNotFound = errors.New("book not found")
)

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context, author, genre string, limit, offset int) ([]model.Book, error)
	Search(ctx context.Context, query string) ([]model.Book, error)
	ByID(ctx context.Context, id int64) (*model.Book, error)
	Reviews(ctx context.Context, bookID int64, limit, offset int) ([]model.BookReview, error)
	AverageRating(ctx context.Context, bookID int64) (float64, error)
}

type ListParams struct {
	Page   int
	Limit  int
	Author string
	Genre  string
}

type Service interface {
	Create(ctx context.Context, userID int64, title, author, genre string) (*model.Book, error)
	List(ctx context.Context, p ListParams) ([]model.Book, error)
	Search(ctx context.Context, query string) ([]model.Book, error)
	Detail(ctx context.Context, id int64, page, limit int) (*model.BookDetail, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, userID int64, title, author, genre string) (*model.Book, error) {
	if title == "" || author == "" || genre == "" {
		return nil, ErrBadInput
	}
	b := &model.Book{
		Title:       title,
		Author:      author,
		Genre:       genre,
		CreatedByID: userID,
	}
	if err := s.r.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context, p ListParams) ([]model.Book, error) {
	page, limit := normalize(p.Page, p.Limit, 10)
	return s.r.List(ctx, p.Author, p.Genre, limit, (page-1)*limit)
}

func (s *service) Search(ctx context.Context, query string) ([]model.Book, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrBadInput
	}
	return s.r.Search(ctx, query)
}

func (s *service) Detail(ctx context.Context, id int64, page, limit int) (*model.BookDetail, error) {
	b, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	page, limit = normalize(page, limit, 5)
	reviews, err := s.r.Reviews(ctx, id, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []model.BookReview{}
	}
	avg, err := s.r.AverageRating(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.BookDetail{Book: *b, Reviews: reviews, AverageRating: avg}, nil
}

func normalize(page, limit, defLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defLimit
	}
	return page, limit
}

func Code(err error) error {
	for _, known := range []error{ErrBadInput, ErrNotFound} {
		if errors.Is(err, known) {
			return known
		}
	}
	return nil
}
