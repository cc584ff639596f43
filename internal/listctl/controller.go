// Package listctl holds the state machine shared by every admin list screen:
// an authoritative collection, a search term, a paginator and a single
// expanded row. One Controller is parameterized per entity type by a Config.
package listctl

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/5w1tchy/nexus-admin/internal/form"
)

var (
	ErrNotFound  = errors.New("listctl: not found")
	ErrPageSize  = errors.New("listctl: unsupported page size")
	ErrPageIndex = errors.New("listctl: negative page index")
)

var DefaultPageSizes = []int{5, 10, 20}

// CollapsePolicy says which view changes close the expanded row.
type CollapsePolicy struct {
	OnFilter bool
	OnPage   bool
}

type Config[T any] struct {
	Name       string
	ID         func(T) int64
	SetID      func(T, int64) T
	Fields     func(T) []string // searchable text, OR-matched
	FallbackID int64            // first id handed out when the list is empty
	PageSizes  []int            // first entry is the default
	Collapse   CollapsePolicy
	Fold       bool // accent-insensitive search
}

// View is the derived state a list screen renders.
type View[T any] struct {
	Items      []T    `json:"items"`
	Term       string `json:"term"`
	PageIndex  int    `json:"page_index"`
	PageSize   int    `json:"page_size"`
	PageSizes  []int  `json:"page_size_options"`
	PageCount  int    `json:"page_count"`
	Filtered   int    `json:"filtered"`
	Total      int    `json:"total"`
	ExpandedID *int64 `json:"expanded_id"`
}

// Controller is safe for concurrent use. The backing slice is replaced on
// every mutation and never written in place.
type Controller[T any] struct {
	cfg Config[T]

	mu          sync.RWMutex
	items       []T
	term        string
	page        int
	size        int
	expanded    int64
	hasExpanded bool
	version     uint64
}

func New[T any](cfg Config[T], seed []T) *Controller[T] {
	if cfg.ID == nil || cfg.SetID == nil || cfg.Fields == nil {
		panic("listctl: Config for " + cfg.Name + " needs ID, SetID and Fields")
	}
	if len(cfg.PageSizes) == 0 {
		cfg.PageSizes = DefaultPageSizes
	}
	return &Controller[T]{
		cfg:   cfg,
		items: slices.Clone(seed),
		size:  cfg.PageSizes[0],
	}
}

func (c *Controller[T]) Name() string { return c.cfg.Name }

// IDOf reads the id of item through the configured accessor.
func (c *Controller[T]) IDOf(item T) int64 { return c.cfg.ID(item) }

func (c *Controller[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *Controller[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Version increases each time the collection changes.
func (c *Controller[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Controller[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if c.cfg.ID(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Find returns the first item satisfying fn.
func (c *Controller[T]) Find(fn func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if fn(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// ---- view state ----

func (c *Controller[T]) Term() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.term
}

// SetTerm replaces the search term and returns to the first page.
func (c *Controller[T]) SetTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.term = strings.TrimSpace(term)
	c.page = 0
	if c.cfg.Collapse.OnFilter {
		c.hasExpanded = false
	}
}

// SetPage moves the paginator. The term is left alone.
func (c *Controller[T]) SetPage(index, size int) error {
	if index < 0 {
		return ErrPageIndex
	}
	if !slices.Contains(c.cfg.PageSizes, size) {
		return ErrPageSize
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = index
	c.size = size
	if c.cfg.Collapse.OnPage {
		c.hasExpanded = false
	}
	return nil
}

func (c *Controller[T]) Page() (index, size int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.page, c.size
}

// Toggle collapses id when it is the expanded row, otherwise expands it.
func (c *Controller[T]) Toggle(id int64) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasExpanded && c.expanded == id {
		c.hasExpanded = false
		return 0, false
	}
	c.expanded, c.hasExpanded = id, true
	return id, true
}

func (c *Controller[T]) Expanded() (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expanded, c.hasExpanded
}

func (c *Controller[T]) Collapse() {
	c.mu.Lock()
	c.hasExpanded = false
	c.mu.Unlock()
}

// View derives the current page from the stored term and paginator.
func (c *Controller[T]) View() View[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.derive(c.term, c.page, c.size)
}

// Query derives a page for the given parameters without touching the stored
// view state.
func (c *Controller[T]) Query(term string, index, size int) (View[T], error) {
	if index < 0 {
		return View[T]{}, ErrPageIndex
	}
	if !slices.Contains(c.cfg.PageSizes, size) {
		return View[T]{}, ErrPageSize
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.derive(strings.TrimSpace(term), index, size), nil
}

// PageSizes returns the allowed page sizes, default first.
func (c *Controller[T]) PageSizes() []int { return slices.Clone(c.cfg.PageSizes) }

func (c *Controller[T]) derive(term string, index, size int) View[T] {
	filtered := Filter(c.items, term, c.cfg.Fields, c.cfg.Fold)
	v := View[T]{
		Items:     Paginate(filtered, index, size),
		Term:      term,
		PageIndex: index,
		PageSize:  size,
		PageSizes: slices.Clone(c.cfg.PageSizes),
		PageCount: PageCount(len(filtered), size),
		Filtered:  len(filtered),
		Total:     len(c.items),
	}
	if c.hasExpanded {
		id := c.expanded
		v.ExpandedID = &id
	}
	return v
}

// ---- mutations ----

// Create assigns the next id to item and appends it.
func (c *Controller[T]) Create(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	item = c.cfg.SetID(item, NextID(c.items, c.cfg.ID, c.cfg.FallbackID))
	next := make([]T, len(c.items), len(c.items)+1)
	copy(next, c.items)
	c.install(append(next, item))
	return item
}

// Update replaces the item carrying the same id.
func (c *Controller[T]) Update(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.cfg.ID(item)
	i := slices.IndexFunc(c.items, func(it T) bool { return c.cfg.ID(it) == id })
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	next := slices.Clone(c.items)
	next[i] = item
	c.install(next)
	return item, nil
}

// Delete removes id. Deleting the expanded row also collapses it.
func (c *Controller[T]) Delete(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if c.cfg.ID(it) != id {
			next = append(next, it)
		}
	}
	if len(next) == len(c.items) {
		return ErrNotFound
	}
	c.install(next)
	if c.hasExpanded && c.expanded == id {
		c.hasExpanded = false
	}
	return nil
}

// Apply hands a modal result to the matching mutation. It reports false for
// a cancelled result, which leaves the list untouched.
func (c *Controller[T]) Apply(res form.Result[T]) (T, bool, error) {
	switch res.Outcome {
	case form.Created:
		return c.Create(res.Payload), true, nil
	case form.Updated:
		out, err := c.Update(res.Payload)
		return out, err == nil, err
	default:
		var zero T
		return zero, false, nil
	}
}

// Map rewrites every item through fn and installs the result when at least
// one item changed. It returns how many changed.
func (c *Controller[T]) Map(fn func(T) (T, bool)) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, len(c.items))
	n := 0
	for i, it := range c.items {
		out, changed := fn(it)
		if changed {
			n++
		}
		next[i] = out
	}
	if n > 0 {
		c.install(next)
	}
	return n
}

func (c *Controller[T]) install(next []T) {
	c.items = next
	c.version++
}
