package models

import "time"

type Review struct {
	ID        int64           `json:"id"`
	Rating    int             `json:"rating"`
	Body      string          `json:"body"`
	CreatedAt time.Time       `json:"created_at"`
	Book      ReviewBook      `json:"book"`
	Comments  []ReviewComment `json:"comments"`
}

// ReviewBook is the denormalized copy of the reviewed book.
type ReviewBook struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	PublicationYear int      `json:"publication_year"`
	ISBN            string   `json:"isbn"`
	PublisherName   string   `json:"publisher_name"`
	EditorNames     []string `json:"editor_names"`
}

type ReviewComment struct {
	ID     int64     `json:"id"`
	Author string    `json:"author"`
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
}

type Comment struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	Author    string        `json:"author"`
	Review    CommentReview `json:"review"`
}

// CommentReview is the denormalized copy of the commented review.
type CommentReview struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Rating      int    `json:"rating"`
	BodySnippet string `json:"body_snippet"`
}
