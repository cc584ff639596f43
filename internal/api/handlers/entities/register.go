package entities

import (
	"net/http"

	"github.com/5w1tchy/nexus-admin/internal/catalog"
	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

type Deps struct {
	Actor string
	Audit Auditor
	Forms FormRecorder
}

func resource[T, In any](ctl *listctl.Controller[T], m form.Modal[T, In], d Deps) *Resource[T, In] {
	return &Resource[T, In]{Ctl: ctl, Form: m, Actor: d.Actor, Audit: d.Audit, Forms: d.Forms}
}

// Resources builds one Resource per catalog entity.
func Resources(c *catalog.Catalog, d Deps) []Mounter {
	books := resource(c.Books, c.BookForm, d)
	books.Detail = func(b models.Book) any { return c.BookDetail(b) }

	tx := resource(c.Transactions, form.Modal[models.Transaction, struct{}]{}, d)
	tx.ReadOnly = true

	return []Mounter{
		books,
		resource(c.Authors, c.AuthorForm, d),
		resource(c.Publishers, c.PublisherForm, d),
		resource(c.Series, c.SeriesForm, d),
		resource(c.Genres, c.GenreForm, d),
		resource(c.Editors, c.EditorForm, d),
		resource(c.Contracts, c.ContractForm, d),
		resource(c.Reviews, c.ReviewForm, d),
		resource(c.Comments, c.CommentForm, d),
		resource(c.Users, c.UserForm, d),
		resource(c.Notifications, c.NotificationForm, d),
		tx,
	}
}

// Mount registers every entity under prefix, e.g. /admin/books.
func Mount(mux *http.ServeMux, prefix string, c *catalog.Catalog, d Deps) {
	for _, m := range Resources(c, d) {
		m.Mount(mux, prefix)
	}
}
