// Package lookup turns foreign ids into display names. A dangling id never
// fails; it renders as a visible placeholder instead.
package lookup

import "fmt"

type Kind string

const (
	Author    Kind = "Author"
	Publisher Kind = "Publisher"
	Series    Kind = "Series"
	Editor    Kind = "Editor"
	Genre     Kind = "Genre"
	Book      Kind = "Book"
	Review    Kind = "Review"
	User      Kind = "User"
)

// Source resolves ids of one kind.
type Source func(id int64) (string, bool)

// Resolver is read-only once built: register every Source before sharing it.
type Resolver struct {
	sources map[Kind]Source
}

func New() *Resolver {
	return &Resolver{sources: make(map[Kind]Source)}
}

func (r *Resolver) Register(k Kind, s Source) {
	r.sources[k] = s
}

func (r *Resolver) Lookup(k Kind, id int64) (string, bool) {
	s, ok := r.sources[k]
	if !ok {
		return "", false
	}
	return s(id)
}

// Name resolves id or returns Placeholder(k, id).
func (r *Resolver) Name(k Kind, id int64) string {
	if name, ok := r.Lookup(k, id); ok {
		return name
	}
	return Placeholder(k, id)
}

func (r *Resolver) Names(k Kind, ids []int64) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.Name(k, id))
	}
	return out
}

func Placeholder(k Kind, id int64) string {
	return fmt.Sprintf("ID %s %d (Error)", k, id)
}

// From adapts any id getter, typically a list controller's Get.
func From[T any](get func(int64) (T, bool), name func(T) string) Source {
	return func(id int64) (string, bool) {
		v, ok := get(id)
		if !ok {
			return "", false
		}
		return name(v), true
	}
}
