// Package uistate holds the layout state the admin shell shares across
// screens. Both holders are created once at startup and mutated only
// through their setters.
package uistate

import (
	"slices"
	"sync"
)

// DefaultSection is open when the shell first loads.
const DefaultSection = "Main"

type Sidebar struct {
	mu       sync.RWMutex
	expanded bool
	sections map[string]struct{}
}

func NewSidebar() *Sidebar {
	return &Sidebar{
		expanded: true,
		sections: map[string]struct{}{DefaultSection: {}},
	}
}

func (s *Sidebar) Expanded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expanded
}

func (s *Sidebar) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expanded = !s.expanded
	return s.expanded
}

// ToggleSection opens or closes a menu section. On a collapsed sidebar it
// only expands the sidebar and leaves the sections as they were.
func (s *Sidebar) ToggleSection(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.expanded {
		s.expanded = true
		return
	}
	if _, ok := s.sections[label]; ok {
		delete(s.sections, label)
		return
	}
	s.sections[label] = struct{}{}
}

func (s *Sidebar) SectionExpanded(label string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sections[label]
	return ok
}

// Sections lists the open sections in sorted order.
func (s *Sidebar) Sections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.sections))
	for k := range s.sections {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

type Theme struct {
	mu   sync.RWMutex
	dark bool
}

func NewTheme(dark bool) *Theme { return &Theme{dark: dark} }

func (t *Theme) Dark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dark
}

func (t *Theme) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = !t.dark
	return t.dark
}

func (t *Theme) SetDark(dark bool) {
	t.mu.Lock()
	t.dark = dark
	t.mu.Unlock()
}

// Snapshot is the JSON view of both holders.
type Snapshot struct {
	SidebarExpanded  bool     `json:"sidebar_expanded"`
	ExpandedSections []string `json:"expanded_sections"`
	DarkMode         bool     `json:"dark_mode"`
}

func Snap(s *Sidebar, t *Theme) Snapshot {
	return Snapshot{
		SidebarExpanded:  s.Expanded(),
		ExpandedSections: s.Sections(),
		DarkMode:         t.Dark(),
	}
}
