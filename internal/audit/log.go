// Package audit records admin mutations. Events go through a bounded,
// non-blocking Queue and land in an in-memory Log.
package audit

import (
	"strings"
	"sync"
	"time"
)

type Event struct {
	ID       int64          `json:"id"`
	Actor    string         `json:"actor"`
	Action   string         `json:"action"` // <entity>.<op>, e.g. books.create
	TargetID string         `json:"target_id,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
	At       time.Time      `json:"created_at"`
}

type Filter struct {
	Actor    string
	Action   string // exact action, or a prefix ending in "."
	TargetID string
	Since    *time.Time
	Until    *time.Time
	Page     int // 1-based
	Size     int
}

func (f Filter) match(e Event) bool {
	if f.Actor != "" && e.Actor != f.Actor {
		return false
	}
	if f.Action != "" {
		if strings.HasSuffix(f.Action, ".") {
			if !strings.HasPrefix(e.Action, f.Action) {
				return false
			}
		} else if e.Action != f.Action {
			return false
		}
	}
	if f.TargetID != "" && e.TargetID != f.TargetID {
		return false
	}
	if f.Since != nil && e.At.Before(*f.Since) {
		return false
	}
	if f.Until != nil && e.At.After(*f.Until) {
		return false
	}
	return true
}

// Log keeps events in arrival order. Prune bounds it.
type Log struct {
	mu      sync.RWMutex
	entries []Event
	nextID  int64
}

func NewLog() *Log { return &Log{nextID: 1} }

func (l *Log) Append(batch ...Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range batch {
		e.ID = l.nextID
		l.nextID++
		l.entries = append(l.entries, e)
	}
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// List returns one page of matching events, newest first, plus the total
// number of matches.
func (l *Log) List(f Filter) ([]Event, int) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matched := make([]Event, 0)
	for i := len(l.entries) - 1; i >= 0; i-- {
		if f.match(l.entries[i]) {
			matched = append(matched, l.entries[i])
		}
	}
	total := len(matched)
	if f.Page < 1 || f.Size < 1 {
		return matched, total
	}
	start := (f.Page - 1) * f.Size
	if start >= total {
		return []Event{}, total
	}
	end := min(start+f.Size, total)
	return matched[start:end], total
}

// Prune drops all but the newest keep events and reports how many it removed.
func (l *Log) Prune(keep int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if keep < 0 {
		keep = 0
	}
	n := len(l.entries) - keep
	if n <= 0 {
		return 0
	}
	next := make([]Event, keep)
	copy(next, l.entries[n:])
	l.entries = next
	return n
}
