package catalog

import (
	"strconv"
	"strings"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

type ContractInput struct {
	AuthorID   *int64   `json:"author_id"`
	DateSigned string   `json:"date_signed"`
	Royalty    *float64 `json:"royalty_rate"`
}

// Contracts keep the expanded row across searches and page changes.
func contractConfig(fold bool) listctl.Config[models.Contract] {
	return listctl.Config[models.Contract]{
		Name:  "contracts",
		ID:    func(c models.Contract) int64 { return c.ID },
		SetID: func(c models.Contract, id int64) models.Contract { c.ID = id; return c },
		Fields: func(c models.Contract) []string {
			return []string{
				c.Author.FirstName,
				c.Author.LastName,
				c.DateSigned,
				strconv.FormatFloat(c.Royalty, 'f', -1, 64),
			}
		},
		FallbackID: 301,
		Fold:       fold,
	}
}

// contractSchema embeds a snapshot of the chosen author, read from the live
// author list at submit time.
func (c *Catalog) contractSchema() form.Schema[models.Contract, ContractInput] {
	return form.Schema[models.Contract, ContractInput]{
		Validate: func(ch *form.Checker, in ContractInput) {
			ch.RequiredID("author_id", in.AuthorID)
			ch.Date("date_signed", in.DateSigned)
			ch.FloatRange("royalty_rate", in.Royalty, 0, 100)
		},
		Build: func(in ContractInput, original *models.Contract) (models.Contract, error) {
			a, ok := c.Authors.Get(*in.AuthorID)
			if !ok {
				return models.Contract{}, form.Fail("Error: author not found.")
			}
			out := models.Contract{
				DateSigned: strings.TrimSpace(in.DateSigned),
				Royalty:    *in.Royalty,
				Author:     models.ContractAuthor{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName},
			}
			if original != nil {
				out.ID = original.ID
			}
			return out, nil
		},
	}
}
