// Package catalog wires one list controller and one edit form per admin
// entity, seeded with the mock back office.
package catalog

import (
	"time"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/lookup"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

type Options struct {
	Now   func() time.Time
	Fold  bool          // accent-insensitive search
	Delay time.Duration // simulated save delay for every form
	Empty bool          // start with no seed data

	// CommentAuthor names the author of comments created from the admin.
	CommentAuthor func() string
}

type Catalog struct {
	Books         *listctl.Controller[models.Book]
	Authors       *listctl.Controller[models.Author]
	Publishers    *listctl.Controller[models.Publisher]
	Series        *listctl.Controller[models.Series]
	Genres        *listctl.Controller[models.Genre]
	Editors       *listctl.Controller[models.Editor]
	Contracts     *listctl.Controller[models.Contract]
	Reviews       *listctl.Controller[models.Review]
	Comments      *listctl.Controller[models.Comment]
	Users         *listctl.Controller[models.User]
	Notifications *listctl.Controller[models.Notification]
	Transactions  *listctl.Controller[models.Transaction]

	BookForm         form.Modal[models.Book, BookInput]
	AuthorForm       form.Modal[models.Author, AuthorInput]
	PublisherForm    form.Modal[models.Publisher, PublisherInput]
	SeriesForm       form.Modal[models.Series, SeriesInput]
	GenreForm        form.Modal[models.Genre, GenreInput]
	EditorForm       form.Modal[models.Editor, EditorInput]
	ContractForm     form.Modal[models.Contract, ContractInput]
	ReviewForm       form.Modal[models.Review, ReviewInput]
	CommentForm      form.Modal[models.Comment, CommentInput]
	UserForm         form.Modal[models.User, UserInput]
	NotificationForm form.Modal[models.Notification, NotificationInput]

	Names *lookup.Resolver

	now           func() time.Time
	commentAuthor func() string
}

func New(opts Options) *Catalog {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CommentAuthor == nil {
		opts.CommentAuthor = func() string { return "Nexus Editorial" }
	}

	var seed dataset
	if !opts.Empty {
		seed = seedData(opts.Now())
	}

	c := &Catalog{
		Names:         lookup.New(),
		now:           opts.Now,
		commentAuthor: opts.CommentAuthor,
	}

	c.Authors = listctl.New(authorConfig(opts.Fold), seed.authors)
	c.Publishers = listctl.New(publisherConfig(opts.Fold), seed.publishers)
	c.Series = listctl.New(seriesConfig(opts.Fold), seed.series)
	c.Genres = listctl.New(genreConfig(opts.Fold), seed.genres)
	c.Editors = listctl.New(editorConfig(opts.Fold), seed.editors)
	c.Books = listctl.New(bookConfig(c.Names, opts.Fold), seed.books)
	c.Contracts = listctl.New(contractConfig(opts.Fold), seed.contracts)
	c.Reviews = listctl.New(reviewConfig(opts.Fold), seed.reviews)
	c.Comments = listctl.New(commentConfig(opts.Fold), seed.comments)
	c.Users = listctl.New(userConfig(opts.Fold), seed.users)
	c.Notifications = listctl.New(notificationConfig(opts.Fold), seed.notifications)
	c.Transactions = listctl.New(transactionConfig(opts.Fold), seed.transactions)

	c.Names.Register(lookup.Author, lookup.From(c.Authors.Get, models.Author.FullName))
	c.Names.Register(lookup.Publisher, lookup.From(c.Publishers.Get, func(p models.Publisher) string { return p.Name }))
	c.Names.Register(lookup.Series, lookup.From(c.Series.Get, func(s models.Series) string { return s.Name }))
	c.Names.Register(lookup.Genre, lookup.From(c.Genres.Get, func(g models.Genre) string { return g.Name }))
	c.Names.Register(lookup.Editor, lookup.From(c.Editors.Get, func(e models.Editor) string { return e.Name }))
	c.Names.Register(lookup.Book, lookup.From(c.Books.Get, func(b models.Book) string { return b.Title }))
	c.Names.Register(lookup.User, lookup.From(c.Users.Get, func(u models.User) string { return u.Username }))

	c.BookForm = form.NewModal(bookSchema(opts.Now), opts.Delay)
	c.AuthorForm = form.NewModal(authorSchema(), opts.Delay)
	c.PublisherForm = form.NewModal(publisherSchema(), opts.Delay)
	c.SeriesForm = form.NewModal(seriesSchema(), opts.Delay)
	c.GenreForm = form.NewModal(genreSchema(), opts.Delay)
	c.EditorForm = form.NewModal(editorSchema(), opts.Delay)
	c.ContractForm = form.NewModal(c.contractSchema(), opts.Delay)
	c.ReviewForm = form.NewModal(c.reviewSchema(), opts.Delay)
	c.CommentForm = form.NewModal(c.commentSchema(), opts.Delay)
	c.UserForm = form.NewModal(userSchema(), opts.Delay)
	c.NotificationForm = form.NewModal(c.notificationSchema(), opts.Delay)
	return c
}

// Counts reports the size of every collection, keyed by its route name.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		c.Books.Name():         c.Books.Len(),
		c.Authors.Name():       c.Authors.Len(),
		c.Publishers.Name():    c.Publishers.Len(),
		c.Series.Name():        c.Series.Len(),
		c.Genres.Name():        c.Genres.Len(),
		c.Editors.Name():       c.Editors.Len(),
		c.Contracts.Name():     c.Contracts.Len(),
		c.Reviews.Name():       c.Reviews.Len(),
		c.Comments.Name():      c.Comments.Len(),
		c.Users.Name():         c.Users.Len(),
		c.Notifications.Name(): c.Notifications.Len(),
		c.Transactions.Name():  c.Transactions.Len(),
	}
}

// collapseAll closes the expanded row on both filter and page changes.
var collapseAll = listctl.CollapsePolicy{OnFilter: true, OnPage: true}
