package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type author struct {
	id   int64
	name string
}

func TestResolver(t *testing.T) {
	authors := map[int64]author{203: {203, "Gabriel García Márquez"}}
	r := New()
	r.Register(Author, From(func(id int64) (author, bool) {
		a, ok := authors[id]
		return a, ok
	}, func(a author) string { return a.name }))

	assert.Equal(t, "Gabriel García Márquez", r.Name(Author, 203))
	assert.Equal(t, "ID Author 999 (Error)", r.Name(Author, 999))
	assert.Equal(t, "ID Genre 1 (Error)", r.Name(Genre, 1), "unregistered kinds degrade too")
	assert.Equal(t, []string{"Gabriel García Márquez", "ID Author 1 (Error)"}, r.Names(Author, []int64{203, 1}))
	assert.Empty(t, r.Names(Author, nil))

	_, ok := r.Lookup(Author, 999)
	assert.False(t, ok)
}
