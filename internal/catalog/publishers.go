package catalog

import (
	"strconv"
	"strings"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

type PublisherInput struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type SeriesInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GenreInput struct {
	Name string `json:"name"`
}

type EditorInput struct {
	Name string `json:"name"`
}

func publisherConfig(fold bool) listctl.Config[models.Publisher] {
	return listctl.Config[models.Publisher]{
		Name:       "publishers",
		ID:         func(p models.Publisher) int64 { return p.ID },
		SetID:      func(p models.Publisher, id int64) models.Publisher { p.ID = id; return p },
		Fields:     func(p models.Publisher) []string { return []string{p.Name, p.City} },
		FallbackID: 401,
		Collapse:   collapseAll,
		Fold:       fold,
	}
}

func publisherSchema() form.Schema[models.Publisher, PublisherInput] {
	return form.Schema[models.Publisher, PublisherInput]{
		Validate: func(c *form.Checker, in PublisherInput) {
			c.Text("name", in.Name, 100)
			c.Text("city", in.City, 50)
		},
		Build: func(in PublisherInput, original *models.Publisher) (models.Publisher, error) {
			p := models.Publisher{
				Name:       strings.TrimSpace(in.Name),
				City:       strings.TrimSpace(in.City),
				BookTitles: []string{},
			}
			if original != nil {
				p.ID = original.ID
				p.BookTitles = original.BookTitles
			}
			return p, nil
		},
	}
}

func seriesConfig(fold bool) listctl.Config[models.Series] {
	return listctl.Config[models.Series]{
		Name:       "series",
		ID:         func(s models.Series) int64 { return s.ID },
		SetID:      func(s models.Series, id int64) models.Series { s.ID = id; return s },
		Fields:     func(s models.Series) []string { return []string{s.Name, s.Description} },
		FallbackID: 501,
		Collapse:   collapseAll,
		Fold:       fold,
	}
}

func seriesSchema() form.Schema[models.Series, SeriesInput] {
	return form.Schema[models.Series, SeriesInput]{
		Validate: func(c *form.Checker, in SeriesInput) {
			c.Text("name", in.Name, 100)
			c.Text("description", in.Description, 500)
		},
		Build: func(in SeriesInput, original *models.Series) (models.Series, error) {
			s := models.Series{
				Name:        strings.TrimSpace(in.Name),
				Description: strings.TrimSpace(in.Description),
				BookTitles:  []string{},
			}
			if original != nil {
				s.ID = original.ID
				s.BookTitles = original.BookTitles
			}
			return s, nil
		},
	}
}

// Genres keep the expanded row across searches and page changes. 101 is
// the first seeded id.
func genreConfig(fold bool) listctl.Config[models.Genre] {
	return listctl.Config[models.Genre]{
		Name:  "genres",
		ID:    func(g models.Genre) int64 { return g.ID },
		SetID: func(g models.Genre, id int64) models.Genre { g.ID = id; return g },
		Fields: func(g models.Genre) []string {
			return []string{g.Name, strconv.FormatInt(g.ID, 10)}
		},
		FallbackID: 101,
		Fold:       fold,
	}
}

func genreSchema() form.Schema[models.Genre, GenreInput] {
	return form.Schema[models.Genre, GenreInput]{
		Message: "Genre name is required.",
		Validate: func(c *form.Checker, in GenreInput) {
			c.Text("name", in.Name, 50)
		},
		Build: func(in GenreInput, original *models.Genre) (models.Genre, error) {
			g := models.Genre{Name: strings.TrimSpace(in.Name), Books: []models.BookTitle{}}
			if original != nil {
				g.ID = original.ID
				g.Books = original.Books
			}
			return g, nil
		},
	}
}

func editorConfig(fold bool) listctl.Config[models.Editor] {
	return listctl.Config[models.Editor]{
		Name:       "editors",
		ID:         func(e models.Editor) int64 { return e.ID },
		SetID:      func(e models.Editor, id int64) models.Editor { e.ID = id; return e },
		Fields:     func(e models.Editor) []string { return []string{e.Name} },
		FallbackID: 601,
		Collapse:   collapseAll,
		Fold:       fold,
	}
}

func editorSchema() form.Schema[models.Editor, EditorInput] {
	return form.Schema[models.Editor, EditorInput]{
		Validate: func(c *form.Checker, in EditorInput) {
			c.Text("name", in.Name, 100)
		},
		Build: func(in EditorInput, original *models.Editor) (models.Editor, error) {
			e := models.Editor{Name: strings.TrimSpace(in.Name), BookTitles: []string{}}
			if original != nil {
				e.ID = original.ID
				e.BookTitles = original.BookTitles
			}
			return e, nil
		},
	}
}
