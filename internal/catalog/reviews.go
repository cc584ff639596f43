package catalog

import (
	"strings"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/lookup"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

type ReviewInput struct {
	BookID *int64 `json:"book_id"`
	Rating *int   `json:"rating"`
	Body   string `json:"body"`
}

type CommentInput struct {
	ReviewID *int64 `json:"review_id"`
	Content  string `json:"content"`
}

func reviewConfig(fold bool) listctl.Config[models.Review] {
	return listctl.Config[models.Review]{
		Name:  "reviews",
		ID:    func(r models.Review) int64 { return r.ID },
		SetID: func(r models.Review, id int64) models.Review { r.ID = id; return r },
		Fields: func(r models.Review) []string {
			return []string{r.Body, r.Book.Title, r.Book.PublisherName}
		},
		FallbackID: 701,
		Collapse:   collapseAll,
		Fold:       fold,
	}
}

func (c *Catalog) reviewSchema() form.Schema[models.Review, ReviewInput] {
	return form.Schema[models.Review, ReviewInput]{
		Validate: func(ch *form.Checker, in ReviewInput) {
			ch.RequiredID("book_id", in.BookID)
			ch.IntRange("rating", in.Rating, 1, 5)
			ch.Text("body", in.Body, 2000)
		},
		Build: func(in ReviewInput, original *models.Review) (models.Review, error) {
			b, ok := c.Books.Get(*in.BookID)
			if !ok {
				return models.Review{}, form.Fail("Selected book is not valid.")
			}
			r := models.Review{
				Rating:    *in.Rating,
				Body:      strings.TrimSpace(in.Body),
				CreatedAt: c.now().UTC(),
				Book:      c.reviewBook(b),
				Comments:  []models.ReviewComment{},
			}
			if original != nil {
				r.ID = original.ID
				r.CreatedAt = original.CreatedAt
				r.Comments = original.Comments
			}
			return r, nil
		},
	}
}

func (c *Catalog) reviewBook(b models.Book) models.ReviewBook {
	return models.ReviewBook{
		ID:              b.ID,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
		PublisherName:   c.Names.Name(lookup.Publisher, b.PublisherID),
		EditorNames:     c.Names.Names(lookup.Editor, b.EditorIDs),
	}
}

func commentConfig(fold bool) listctl.Config[models.Comment] {
	return listctl.Config[models.Comment]{
		Name:  "comments",
		ID:    func(cm models.Comment) int64 { return cm.ID },
		SetID: func(cm models.Comment, id int64) models.Comment { cm.ID = id; return cm },
		Fields: func(cm models.Comment) []string {
			return []string{cm.Content, cm.Author, cm.Review.Title}
		},
		FallbackID: 801,
		Collapse:   collapseAll,
		Fold:       fold,
	}
}

func (c *Catalog) commentSchema() form.Schema[models.Comment, CommentInput] {
	return form.Schema[models.Comment, CommentInput]{
		Validate: func(ch *form.Checker, in CommentInput) {
			ch.RequiredID("review_id", in.ReviewID)
			ch.Text("content", in.Content, 1000)
		},
		Build: func(in CommentInput, original *models.Comment) (models.Comment, error) {
			r, ok := c.Reviews.Get(*in.ReviewID)
			if !ok {
				return models.Comment{}, form.Fail("Selected review is not valid.")
			}
			cm := models.Comment{
				Content:   strings.TrimSpace(in.Content),
				CreatedAt: c.now().UTC(),
				Author:    c.commentAuthor(),
				Review:    reviewRef(r),
			}
			if original != nil {
				cm.ID = original.ID
				cm.CreatedAt = original.CreatedAt
				cm.Author = original.Author
			}
			return cm, nil
		},
	}
}

func reviewRef(r models.Review) models.CommentReview {
	return models.CommentReview{
		ID:          r.ID,
		Title:       r.Book.Title,
		Rating:      r.Rating,
		BodySnippet: snippet(r.Body, 70),
	}
}
