package listctl

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeTerm trims and lowercases a search term. With fold set it also
// strips combining marks so "pérez" and "perez" compare equal.
func NormalizeTerm(term string, fold bool) string {
	t := strings.ToLower(strings.TrimSpace(term))
	if fold {
		t = foldMarks(t)
	}
	return t
}

func foldMarks(s string) string {
	// transformers carry state; build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Filter keeps the items where the term is a substring of at least one of
// fields(item). A blank term returns items itself, unmodified.
func Filter[T any](items []T, term string, fields func(T) []string, fold bool) []T {
	t := NormalizeTerm(term, fold)
	if t == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchAny(fields(it), t, fold) {
			out = append(out, it)
		}
	}
	return out
}

func matchAny(values []string, term string, fold bool) bool {
	for _, v := range values {
		v = strings.ToLower(v)
		if fold {
			v = foldMarks(v)
		}
		if strings.Contains(v, term) {
			return true
		}
	}
	return false
}

// Paginate returns the window [index*size, index*size+size) of items. An
// index past the last page, a negative index or a non-positive size yields an
// empty slice.
func Paginate[T any](items []T, index, size int) []T {
	if index < 0 || size <= 0 || index >= PageCount(len(items), size) {
		return []T{}
	}
	start := index * size
	end := min(start+size, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// PageCount is ceil(n/size).
func PageCount(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// NextID is max(id)+1 over items, or fallback for an empty list.
func NextID[T any](items []T, id func(T) int64, fallback int64) int64 {
	if len(items) == 0 {
		return fallback
	}
	max := id(items[0])
	for _, it := range items[1:] {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
