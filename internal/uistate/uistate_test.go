package uistate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSidebarDefaults(t *testing.T) {
	s := NewSidebar()
	assert.True(t, s.Expanded())
	assert.True(t, s.SectionExpanded(DefaultSection))
	assert.Equal(t, []string{"Main"}, s.Sections())
}

func TestSidebarToggleSection(t *testing.T) {
	s := NewSidebar()
	s.ToggleSection("Catalog")
	s.ToggleSection(DefaultSection)
	assert.Equal(t, []string{"Catalog"}, s.Sections())

	s.ToggleSection("Catalog")
	assert.Empty(t, s.Sections())
}

func TestSidebarCollapsedExpandsFirst(t *testing.T) {
	s := NewSidebar()
	assert.False(t, s.Toggle())

	s.ToggleSection("Catalog")
	assert.True(t, s.Expanded())
	assert.False(t, s.SectionExpanded("Catalog"), "first click only reopens the sidebar")
	assert.True(t, s.SectionExpanded(DefaultSection))

	s.ToggleSection("Catalog")
	assert.True(t, s.SectionExpanded("Catalog"))
}

func TestTheme(t *testing.T) {
	th := NewTheme(false)
	assert.True(t, th.Toggle())
	assert.True(t, th.Dark())
	th.SetDark(false)
	assert.False(t, th.Dark())

	snap := Snap(NewSidebar(), th)
	assert.Equal(t, Snapshot{SidebarExpanded: true, ExpandedSections: []string{"Main"}}, snap)
}
