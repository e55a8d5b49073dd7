package model

import "time"

type Review struct {
	ID          int64     `json:"id"`
	BookID      int64     `json:"book_id"`
	UserID      int64     `json:"user_id"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

type Reviewer struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// BookReview is the shape reviews take when nested under a book detail
// response: the description is exposed as "content" and the reviewer is
// reduced to id + username.
type BookReview struct {
	ID      int64    `json:"id"`
	Content string   `json:"content"`
	Rating  int      `json:"rating"`
	User    Reviewer `json:"user"`
}
