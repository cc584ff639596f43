// Package jobs holds small helpers for the simulated long-running actions
// (report generation, maintenance tasks).
package jobs

import (
	"errors"
	"sync"
)

// ErrBusy is returned when a job with the same key is already running.
var ErrBusy = errors.New("jobs: already running")

// Guard lets at most one job run per key.
type Guard struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func NewGuard() *Guard { return &Guard{running: map[string]struct{}{}} }

// Start claims key and returns the function that releases it.
func (g *Guard) Start(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.running[key]; ok {
		return nil, ErrBusy
	}
	g.running[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.running, key)
			g.mu.Unlock()
		})
	}, nil
}

func (g *Guard) Running(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.running[key]
	return ok
}
