package booksvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Devanshrai2003/book-review-api/model"
	booksvc "github.com/Devanshrai2003/book-review-api/service/book"
)

type repoMock struct {
	createFn        func(ctx context.Context, b *model.Book) error
	listFn          func(ctx context.Context, author, genre string, limit, offset int) ([]model.Book, error)
	searchFn        func(ctx context.Context, query string) ([]model.Book, error)
	byIDFn          func(ctx context.Context, id int64) (*model.Book, error)
	reviewsFn       func(ctx context.Context, bookID int64, limit, offset int) ([]model.BookReview, error)
	averageRatingFn func(ctx context.Context, bookID int64) (float64, error)
}

func (m *repoMock) Create(ctx context.Context, b *model.Book) error { return m.createFn(ctx, b) }
func (m *repoMock) List(ctx context.Context, author, genre string, limit, offset int) ([]model.Book, error) {
	return m.listFn(ctx, author, genre, limit, offset)
}
func (m *repoMock) Search(ctx context.Context, query string) ([]model.Book, error) {
	return m.searchFn(ctx, query)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Book, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Reviews(ctx context.Context, bookID int64, limit, offset int) ([]model.BookReview, error) {
	return m.reviewsFn(ctx, bookID, limit, offset)
}
func (m *repoMock) AverageRating(ctx context.Context, bookID int64) (float64, error) {
	return m.averageRatingFn(ctx, bookID)
}

func TestCreate_Validation(t *testing.T) {
	s := booksvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), 1, "", "Herbert", "SciFi"); err == nil {
		t.Fatal("expected error for empty title")
	}
	if _, err := s.Create(context.Background(), 1, "Dune", "", "SciFi"); err == nil {
		t.Fatal("expected error for empty author")
	}
	if _, err := s.Create(context.Background(), 1, "Dune", "Herbert", ""); err == nil {
		t.Fatal("expected error for empty genre")
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Book) error {
			if b.Title != "Dune" || b.Author != "Herbert" || b.Genre != "SciFi" || b.CreatedByID != 7 {
				return errors.New("bad args")
			}
			b.ID = 42
			return nil
		},
	}
	s := booksvc.New(m)
	b, err := s.Create(context.Background(), 7, "Dune", "Herbert", "SciFi")
	if err != nil || b.ID != 42 {
		t.Fatalf("got book=%v err=%v; want id 42, nil", b, err)
	}
}

func TestList_Defaults(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, author, genre string, limit, offset int) ([]model.Book, error) {
			if limit != 10 || offset != 0 {
				t.Fatalf("got limit=%d offset=%d; want 10, 0", limit, offset)
			}
			return nil, nil
		},
	}
	s := booksvc.New(m)
	if _, err := s.List(context.Background(), booksvc.ListParams{Page: 0, Limit: 0}); err != nil {
		t.Fatalf("List error: %v", err)
	}
}

func TestList_Paging(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, author, genre string, limit, offset int) ([]model.Book, error) {
			if author != "herb" || genre != "sci" || limit != 5 || offset != 10 {
				t.Fatalf("got %q %q limit=%d offset=%d", author, genre, limit, offset)
			}
			return nil, nil
		},
	}
	s := booksvc.New(m)
	_, err := s.List(context.Background(), booksvc.ListParams{Page: 3, Limit: 5, Author: "herb", Genre: "sci"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	s := booksvc.New(&repoMock{})
	if _, err := s.Search(context.Background(), "  "); !errors.Is(err, booksvc.ErrBadInput) {
		t.Fatalf("got %v; want ErrBadInput", err)
	}
}

func TestDetail_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Book, error) { return nil, nil },
	}
	s := booksvc.New(m)
	if _, err := s.Detail(context.Background(), 99, 1, 5); !errors.Is(err, booksvc.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}

func TestDetail_Success(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Book, error) {
			return &model.Book{ID: id, Title: "Dune", Author: "Herbert", Genre: "SciFi"}, nil
		},
		reviewsFn: func(ctx context.Context, bookID int64, limit, offset int) ([]model.BookReview, error) {
			if limit != 5 || offset != 0 {
				t.Fatalf("got limit=%d offset=%d; want 5, 0", limit, offset)
			}
			return []model.BookReview{{ID: 1, Content: "great", Rating: 5, User: model.Reviewer{ID: 7, Username: "alice"}}}, nil
		},
		averageRatingFn: func(ctx context.Context, bookID int64) (float64, error) { return 5, nil },
	}
	s := booksvc.New(m)
	d, err := s.Detail(context.Background(), 42, 0, 0)
	if err != nil {
		t.Fatalf("Detail error: %v", err)
	}
	if d.Title != "Dune" || len(d.Reviews) != 1 || d.AverageRating != 5 {
		t.Fatalf("unexpected detail: %+v", d)
	}
}
