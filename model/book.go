package model

type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	CreatedByID int64  `json:"created_by_id"`
}

// BookDetail is a book together with a page of its reviews and the
// average rating across all of them (0 when unreviewed).
type BookDetail struct {
	Book
	Reviews       []BookReview `json:"reviews"`
	AverageRating float64      `json:"averageRating"`
}
