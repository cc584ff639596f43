package catalog

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/lookup"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

const minPublicationYear = 1000

type BookInput struct {
	Title           string  `json:"title"`
	ISBN            string  `json:"isbn"`
	PublicationYear *int    `json:"publication_year"`
	AuthorID        *int64  `json:"author_id"`
	PublisherID     *int64  `json:"publisher_id"`
	SeriesID        *int64  `json:"series_id"`
	EditorIDs       []int64 `json:"editor_ids"`
	GenreIDs        []int64 `json:"genre_ids"`
}

func bookConfig(names *lookup.Resolver, fold bool) listctl.Config[models.Book] {
	return listctl.Config[models.Book]{
		Name:  "books",
		ID:    func(b models.Book) int64 { return b.ID },
		SetID: func(b models.Book, id int64) models.Book { b.ID = id; return b },
		Fields: func(b models.Book) []string {
			return []string{
				b.Title,
				b.ISBN,
				strconv.Itoa(b.PublicationYear),
				names.Name(lookup.Author, b.AuthorID),
			}
		},
		FallbackID: 1,
		Collapse:   collapseAll,
		Fold:       fold,
	}
}

func bookSchema(now func() time.Time) form.Schema[models.Book, BookInput] {
	return form.Schema[models.Book, BookInput]{
		Validate: func(c *form.Checker, in BookInput) {
			c.Text("title", in.Title, 255)
			c.Text("isbn", in.ISBN, 20)
			c.IntRange("publication_year", in.PublicationYear, minPublicationYear, now().Year())
			c.RequiredID("author_id", in.AuthorID)
			c.RequiredID("publisher_id", in.PublisherID)
			c.NonEmptyIDs("editor_ids", "editor", in.EditorIDs)
			c.NonEmptyIDs("genre_ids", "genre", in.GenreIDs)
		},
		Build: func(in BookInput, original *models.Book) (models.Book, error) {
			b := models.Book{
				Title:           strings.TrimSpace(in.Title),
				ISBN:            strings.TrimSpace(in.ISBN),
				PublicationYear: *in.PublicationYear,
				AuthorID:        *in.AuthorID,
				PublisherID:     *in.PublisherID,
				EditorIDs:       append([]int64(nil), in.EditorIDs...),
				GenreIDs:        append([]int64(nil), in.GenreIDs...),
			}
			if in.SeriesID != nil && *in.SeriesID > 0 {
				b.SeriesID = ptr(*in.SeriesID)
			}
			if original != nil {
				b.ID = original.ID
			}
			return b, nil
		},
	}
}

// BookDetail resolves a book's relations for the expanded panel.
func (c *Catalog) BookDetail(b models.Book) models.BookDetail {
	d := models.BookDetail{
		Book:          b,
		AuthorName:    c.Names.Name(lookup.Author, b.AuthorID),
		PublisherName: c.Names.Name(lookup.Publisher, b.PublisherID),
		EditorNames:   c.Names.Names(lookup.Editor, b.EditorIDs),
		GenreNames:    c.Names.Names(lookup.Genre, b.GenreIDs),
		Reviews:       []models.ReviewSummary{},
	}
	if b.SeriesID != nil {
		d.SeriesName = c.Names.Name(lookup.Series, *b.SeriesID)
	}
	for _, r := range c.Reviews.Items() {
		if r.Book.ID == b.ID {
			d.Reviews = append(d.Reviews, models.ReviewSummary{ID: r.ID, Rating: r.Rating, Snippet: snippet(r.Body, 60)})
		}
	}
	return d
}

// snippet cuts s to n runes and marks the cut.
func snippet(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "..."
}
