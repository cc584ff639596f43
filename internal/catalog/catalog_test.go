package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestCatalog(t *testing.T, opts Options) *Catalog {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	return New(opts)
}

func i64(v int64) *int64 { return &v }
func intp(v int) *int    { return &v }

func TestSeedCounts(t *testing.T) {
	c := newTestCatalog(t, Options{})
	assert.Equal(t, map[string]int{
		"books": 4, "authors": 7, "publishers": 6, "series": 4, "genres": 10,
		"editors": 5, "contracts": 5, "reviews": 3, "comments": 3, "users": 5,
		"notifications": 4, "transactions": 20,
	}, c.Counts())
}

func TestEmptyCatalogUsesFallbackIDs(t *testing.T) {
	c := newTestCatalog(t, Options{Empty: true})
	assert.Equal(t, int64(1), c.Books.Create(models.Book{}).ID)
	assert.Equal(t, int64(1), c.Authors.Create(models.Author{}).ID)
	assert.Equal(t, int64(401), c.Publishers.Create(models.Publisher{}).ID)
	assert.Equal(t, int64(501), c.Series.Create(models.Series{}).ID)
	assert.Equal(t, int64(101), c.Genres.Create(models.Genre{}).ID)
	assert.Equal(t, int64(601), c.Editors.Create(models.Editor{}).ID)
	assert.Equal(t, int64(301), c.Contracts.Create(models.Contract{}).ID)
	assert.Equal(t, int64(701), c.Reviews.Create(models.Review{}).ID)
	assert.Equal(t, int64(801), c.Comments.Create(models.Comment{}).ID)
	assert.Equal(t, int64(901), c.Users.Create(models.User{}).ID)
}

func TestBooks_SearchByAuthorName(t *testing.T) {
	c := newTestCatalog(t, Options{})
	c.Books.SetTerm("márquez")
	v := c.Books.View()
	require.Len(t, v.Items, 1)
	assert.Equal(t, "Cien Años de Soledad", v.Items[0].Title)

	c.Books.SetTerm("1954")
	assert.Equal(t, int64(3), c.Books.View().Items[0].ID)
}

func TestBooks_FoldedSearch(t *testing.T) {
	c := newTestCatalog(t, Options{Fold: true})
	c.Books.SetTerm("fundacion")
	assert.Equal(t, 1, c.Books.View().Filtered)
}

func TestBooks_SearchSeesRenamedAuthor(t *testing.T) {
	c := newTestCatalog(t, Options{})
	a, _ := c.Authors.Get(205)
	a.LastName = "Martínez"
	_, err := c.Authors.Update(a)
	require.NoError(t, err)

	c.Books.SetTerm("martínez")
	assert.Equal(t, 1, c.Books.View().Filtered)
}

func TestBookForm(t *testing.T) {
	c := newTestCatalog(t, Options{})
	ctx := context.Background()

	_, err := c.BookForm.Submit(ctx, nil, BookInput{
		Title: "Nuevo", ISBN: "123", PublicationYear: intp(2026),
		AuthorID: i64(201), PublisherID: i64(401),
	})
	var fe *form.Errors
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Has("publication_year"), "year after the current one")
	assert.True(t, fe.Has("editor_ids"))
	assert.True(t, fe.Has("genre_ids"))
	assert.False(t, fe.Has("title"))

	res, err := c.BookForm.Submit(ctx, nil, BookInput{
		Title: " Tokio Blues ", ISBN: "978-0-307-59371-3", PublicationYear: intp(1987),
		AuthorID: i64(202), PublisherID: i64(402), SeriesID: i64(0),
		EditorIDs: []int64{605}, GenreIDs: []int64{101},
	})
	require.NoError(t, err)
	require.Equal(t, form.Created, res.Outcome)
	assert.Nil(t, res.Payload.SeriesID)

	b, applied, err := c.Books.Apply(res)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, int64(5), b.ID)
	assert.Equal(t, "Tokio Blues", b.Title)
}

func TestBookDetail(t *testing.T) {
	c := newTestCatalog(t, Options{})
	b, _ := c.Books.Get(1)
	d := c.BookDetail(b)
	assert.Equal(t, "Isaac Asimov", d.AuthorName)
	assert.Equal(t, "Penguin Random House", d.PublisherName)
	assert.Equal(t, "Fundación", d.SeriesName)
	assert.Equal(t, []string{"María García", "Ricardo Morales"}, d.EditorNames)
	assert.Equal(t, []string{"Ciencia Ficción Clásica"}, d.GenreNames)
	require.Len(t, d.Reviews, 1)
	assert.Equal(t, int64(701), d.Reviews[0].ID)

	require.NoError(t, c.Editors.Delete(604))
	d = c.BookDetail(b)
	assert.Equal(t, "ID Editor 604 (Error)", d.EditorNames[1])
}

func TestContractForm_AuthorMustResolve(t *testing.T) {
	c := newTestCatalog(t, Options{})
	ctx := context.Background()

	_, err := c.ContractForm.Submit(ctx, nil, ContractInput{AuthorID: i64(999), DateSigned: "2024-05-01", Royalty: new(float64)})
	assert.EqualError(t, err, "Error: author not found.")

	_, err = c.ContractForm.Submit(ctx, nil, ContractInput{AuthorID: i64(204), DateSigned: "05/01/2024"})
	var fe *form.Errors
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Has("date_signed"))
	assert.True(t, fe.Has("royalty_rate"))

	rate := 7.5
	res, err := c.ContractForm.Submit(ctx, nil, ContractInput{AuthorID: i64(204), DateSigned: "2024-05-01", Royalty: &rate})
	require.NoError(t, err)
	got, _, err := c.Contracts.Apply(res)
	require.NoError(t, err)
	assert.Equal(t, int64(306), got.ID)
	assert.Equal(t, "Austen", got.Author.LastName)

	c.Contracts.SetTerm("7.5")
	assert.Equal(t, 1, c.Contracts.View().Filtered)
}

func TestReviewForm(t *testing.T) {
	c := newTestCatalog(t, Options{})
	ctx := context.Background()

	_, err := c.ReviewForm.Submit(ctx, nil, ReviewInput{BookID: i64(42), Rating: intp(3), Body: "ok"})
	assert.EqualError(t, err, "Selected book is not valid.")

	_, err = c.ReviewForm.Submit(ctx, nil, ReviewInput{BookID: i64(3), Rating: intp(6), Body: "ok"})
	var fe *form.Errors
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Has("rating"))

	res, err := c.ReviewForm.Submit(ctx, nil, ReviewInput{BookID: i64(3), Rating: intp(5), Body: "Épica."})
	require.NoError(t, err)
	r, _, err := c.Reviews.Apply(res)
	require.NoError(t, err)
	assert.Equal(t, int64(704), r.ID)
	assert.Equal(t, fixedNow, r.CreatedAt)
	assert.Equal(t, "Minotauro", r.Book.PublisherName)
	assert.Empty(t, r.Comments)

	orig, _ := c.Reviews.Get(701)
	res, err = c.ReviewForm.Submit(ctx, &orig, ReviewInput{BookID: i64(1), Rating: intp(4), Body: "Revisada."})
	require.NoError(t, err)
	assert.Equal(t, form.Updated, res.Outcome)
	assert.Equal(t, orig.CreatedAt, res.Payload.CreatedAt)
	assert.Len(t, res.Payload.Comments, 2)
}

func TestCommentForm(t *testing.T) {
	c := newTestCatalog(t, Options{CommentAuthor: func() string { return "Juan Pérez" }})
	ctx := context.Background()

	res, err := c.CommentForm.Submit(ctx, nil, CommentInput{ReviewID: i64(702), Content: "De acuerdo."})
	require.NoError(t, err)
	cm, _, err := c.Comments.Apply(res)
	require.NoError(t, err)
	assert.Equal(t, int64(804), cm.ID)
	assert.Equal(t, "Juan Pérez", cm.Author)
	assert.Equal(t, "Cien Años de Soledad", cm.Review.Title)

	orig, _ := c.Comments.Get(801)
	res, err = c.CommentForm.Submit(ctx, &orig, CommentInput{ReviewID: i64(701), Content: "Editado."})
	require.NoError(t, err)
	assert.Equal(t, "Alex V.", res.Payload.Author)
	assert.Equal(t, orig.CreatedAt, res.Payload.CreatedAt)

	_, err = c.CommentForm.Submit(ctx, nil, CommentInput{ReviewID: i64(1), Content: "x"})
	assert.EqualError(t, err, "Selected review is not valid.")
}

func TestUserForm(t *testing.T) {
	c := newTestCatalog(t, Options{})
	ctx := context.Background()

	res, err := c.UserForm.Submit(ctx, nil, UserInput{Email: "nuevo@example.com", Username: "nuevo"})
	require.NoError(t, err)
	u, _, err := c.Users.Apply(res)
	require.NoError(t, err)
	assert.Equal(t, int64(906), u.ID)
	assert.NotNil(t, u.FollowingIDs)
	assert.Empty(t, u.FollowingIDs)
	assert.Empty(t, u.FollowerIDs)

	orig, _ := c.Users.Get(902)
	res, err = c.UserForm.Submit(ctx, &orig, UserInput{Email: "bob@nexus.com", Username: "bob"})
	require.NoError(t, err)
	assert.Equal(t, []int64{901, 904}, res.Payload.FollowingIDs)
	assert.Equal(t, []int64{901, 903}, res.Payload.FollowerIDs)

	_, err = c.UserForm.Submit(ctx, nil, UserInput{Email: "bad", Username: ""})
	var fe *form.Errors
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Has("email"))
	assert.True(t, fe.Has("username"))
}

func TestGenreForm_Message(t *testing.T) {
	c := newTestCatalog(t, Options{})
	_, err := c.GenreForm.Submit(context.Background(), nil, GenreInput{})
	var fe *form.Errors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Genre name is required.", fe.Message)
}

func TestNotifications(t *testing.T) {
	c := newTestCatalog(t, Options{})
	assert.Equal(t, 2, c.UnreadCount())

	n, err := c.ToggleRead(1)
	require.NoError(t, err)
	assert.True(t, n.Read)
	assert.Equal(t, 1, c.UnreadCount())

	n, err = c.OpenNotification(2)
	require.NoError(t, err)
	assert.True(t, n.Read)
	assert.Equal(t, "/manuscripts/203", n.Link)

	v := c.Notifications.Version()
	_, err = c.OpenNotification(3)
	require.NoError(t, err)
	assert.Equal(t, v, c.Notifications.Version(), "opening a read notification changes nothing")

	_, err = c.ToggleRead(1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.MarkAllRead())
	assert.Equal(t, 0, c.UnreadCount())
	assert.Equal(t, 0, c.MarkAllRead())

	_, err = c.ToggleRead(77)
	assert.ErrorIs(t, err, listctl.ErrNotFound)
}

func TestNotificationForm(t *testing.T) {
	c := newTestCatalog(t, Options{})
	res, err := c.NotificationForm.Submit(context.Background(), nil, NotificationInput{
		Message: "Contrato por vencer", Type: "alert", Link: "/contracts/301",
	})
	require.NoError(t, err)
	assert.Equal(t, "error", res.Payload.Icon)
	assert.False(t, res.Payload.Read)
	assert.Equal(t, fixedNow, res.Payload.Timestamp)

	_, err = c.NotificationForm.Submit(context.Background(), nil, NotificationInput{Message: "x", Type: "spam", Link: "/"})
	var fe *form.Errors
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Has("type"))
}

func TestDashboard(t *testing.T) {
	c := newTestCatalog(t, Options{})
	cards := map[string]int{}
	for _, card := range c.Dashboard().Cards {
		cards[card.Key] = card.Value
	}
	assert.Equal(t, 5, cards["users"])
	assert.Equal(t, 4, cards["books"])
	assert.Equal(t, 2, cards["alerts"])
	assert.Equal(t, 7, cards["failed"])

	c.Transactions.SetTerm("failed")
	assert.Equal(t, 7, c.Transactions.View().Filtered)
	assert.Equal(t, []int{5, 10, 25, 100}, c.Transactions.PageSizes())
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "corto", snippet("corto", 10))
	assert.Equal(t, "áéíóú...", snippet("áéíóúxyz", 5))
}
