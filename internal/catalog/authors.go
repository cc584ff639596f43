package catalog

import (
	"strconv"
	"strings"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

type AuthorInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// Authors keep the expanded row across searches and page changes.
func authorConfig(fold bool) listctl.Config[models.Author] {
	return listctl.Config[models.Author]{
		Name:  "authors",
		ID:    func(a models.Author) int64 { return a.ID },
		SetID: func(a models.Author, id int64) models.Author { a.ID = id; return a },
		Fields: func(a models.Author) []string {
			return []string{a.FirstName, a.LastName, strconv.FormatInt(a.ID, 10)}
		},
		FallbackID: 1,
		Fold:       fold,
	}
}

func authorSchema() form.Schema[models.Author, AuthorInput] {
	return form.Schema[models.Author, AuthorInput]{
		Validate: func(c *form.Checker, in AuthorInput) {
			c.Text("first_name", in.FirstName, 50)
			c.Text("last_name", in.LastName, 50)
			c.Text("bio", in.Bio, 500)
		},
		Build: func(in AuthorInput, original *models.Author) (models.Author, error) {
			a := models.Author{
				FirstName: strings.TrimSpace(in.FirstName),
				LastName:  strings.TrimSpace(in.LastName),
				Bio:       strings.TrimSpace(in.Bio),
				Books:     []models.BookTitle{},
			}
			if original != nil {
				a.ID = original.ID
				a.Books = original.Books
			}
			return a, nil
		},
	}
}
