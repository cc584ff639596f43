package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func codes(c *Checker) map[string]string {
	out := map[string]string{}
	for _, f := range c.fields {
		out[f.Field] = f.Code
	}
	return out
}

func TestChecker(t *testing.T) {
	year, badYear := 1999, 999
	rate, badRate := 12.5, 100.5
	var id, zero int64 = 7, 0

	var c Checker
	c.Text("title", "Rayuela", 255)
	c.Text("isbn", "   ", 20)
	c.Text("bio", strings.Repeat("á", 501), 500)
	c.MaxLen("note", "", 10)
	c.IntRange("year", &year, 1000, 2026)
	c.IntRange("old", &badYear, 1000, 2026)
	c.IntRange("missing", nil, 1, 5)
	c.FloatRange("royalty", &rate, 0, 100)
	c.FloatRange("royalty_hi", &badRate, 0, 100)
	c.RequiredID("author_id", &id)
	c.RequiredID("publisher_id", &zero)
	c.RequiredID("series_id", nil)
	c.NonEmptyIDs("genre_ids", "genre", nil)
	c.Email("email", "lector@nexus.com", 100)
	c.Email("email2", "not-an-email", 100)
	c.Date("date_signed", "2024-02-30")
	c.Date("date_ok", "2024-02-29")
	c.OneOf("type", "alert", "manuscript", "system", "review", "alert")
	c.OneOf("type2", "spam", "manuscript", "system")

	assert.Equal(t, map[string]string{
		"isbn":         "required",
		"bio":          "too_long",
		"old":          "out_of_range",
		"missing":      "required",
		"royalty_hi":   "out_of_range",
		"publisher_id": "required",
		"series_id":    "required",
		"genre_ids":    "required",
		"email2":       "invalid",
		"date_signed":  "invalid",
		"type2":        "invalid",
	}, codes(&c))
	assert.False(t, c.Valid())
}

func TestChecker_ErrNilWhenValid(t *testing.T) {
	var c Checker
	c.Text("name", "Terror", 50)
	assert.NoError(t, c.Err(""))
	assert.True(t, c.Valid())
}

func TestChecker_ErrCustomMessage(t *testing.T) {
	var c Checker
	c.Text("name", "", 50)
	err := c.Err("Name is required.")
	assert.EqualError(t, err, "Name is required. (name)")
}

func TestChecker_NonEmptyIDsMessage(t *testing.T) {
	var c Checker
	c.NonEmptyIDs("editor_ids", "editor", nil)
	c.NonEmptyIDs("genre_ids", "genre", []int64{101})

	if assert.Len(t, c.fields, 1) {
		assert.Equal(t, "editor_ids", c.fields[0].Field)
		assert.Equal(t, "select at least one editor", c.fields[0].Message)
	}
}
