package listctl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/nexus-admin/internal/form"
)

func newRows(policy CollapsePolicy, seed ...row) *Controller[row] {
	return New(Config[row]{
		Name:       "rows",
		ID:         func(r row) int64 { return r.ID },
		SetID:      func(r row, id int64) row { r.ID = id; return r },
		Fields:     rowFields,
		FallbackID: 401,
		Collapse:   policy,
	}, seed)
}

func TestController_DefaultView(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	v := c.View()
	assert.Equal(t, 5, v.PageSize)
	assert.Equal(t, []int{5, 10, 20}, v.PageSizes)
	assert.Equal(t, 0, v.PageIndex)
	assert.Equal(t, 2, v.PageCount)
	assert.Equal(t, 6, v.Total)
	assert.Equal(t, 6, v.Filtered)
	assert.Nil(t, v.ExpandedID)
	assert.Len(t, v.Items, 5)
}

func TestController_SetTermResetsPage(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	require.NoError(t, c.SetPage(1, 5))

	c.SetTerm("madrid")
	idx, size := c.Page()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 5, size)

	v := c.View()
	assert.Equal(t, []int64{3, 4, 6}, rowIDs(v.Items))
	assert.Equal(t, 3, v.Filtered)
	assert.Equal(t, 6, v.Total)
}

func TestController_SetPageKeepsTerm(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	c.SetTerm("a")
	require.NoError(t, c.SetPage(1, 10))
	assert.Equal(t, "a", c.Term())
}

func TestController_SetPageRejectsBadInput(t *testing.T) {
	c := newRows(CollapsePolicy{})
	assert.ErrorIs(t, c.SetPage(0, 7), ErrPageSize)
	assert.ErrorIs(t, c.SetPage(-1, 5), ErrPageIndex)

	_, err := c.Query("", 0, 3)
	assert.ErrorIs(t, err, ErrPageSize)
}

func TestController_PageBeyondEndIsEmpty(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	require.NoError(t, c.SetPage(9, 5))
	v := c.View()
	assert.Empty(t, v.Items)
	assert.NotNil(t, v.Items)
}

func TestController_QueryIsStateless(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	v, err := c.Query("barcelona", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 5}, rowIDs(v.Items))

	assert.Equal(t, "", c.Term())
	idx, size := c.Page()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 5, size)
}

func TestController_ToggleTwiceCollapses(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	id, ok := c.Toggle(3)
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)

	_, ok = c.Toggle(3)
	assert.False(t, ok)
	_, ok = c.Expanded()
	assert.False(t, ok)
}

func TestController_ToggleOtherReplaces(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	c.Toggle(3)
	c.Toggle(4)
	id, ok := c.Expanded()
	require.True(t, ok)
	assert.Equal(t, int64(4), id)
	assert.Equal(t, int64(4), *c.View().ExpandedID)
}

func TestController_CollapsePolicy(t *testing.T) {
	keep := newRows(CollapsePolicy{}, cities...)
	keep.Toggle(2)
	keep.SetTerm("x")
	require.NoError(t, keep.SetPage(0, 10))
	_, ok := keep.Expanded()
	assert.True(t, ok, "policy off: expansion survives term and page changes")

	onFilter := newRows(CollapsePolicy{OnFilter: true}, cities...)
	onFilter.Toggle(2)
	require.NoError(t, onFilter.SetPage(0, 10))
	_, ok = onFilter.Expanded()
	assert.True(t, ok)
	onFilter.SetTerm("x")
	_, ok = onFilter.Expanded()
	assert.False(t, ok)

	onPage := newRows(CollapsePolicy{OnPage: true}, cities...)
	onPage.Toggle(2)
	require.NoError(t, onPage.SetPage(1, 5))
	_, ok = onPage.Expanded()
	assert.False(t, ok)
}

func TestController_CreateAssignsNextID(t *testing.T) {
	c := newRows(CollapsePolicy{}, row{ID: 1}, row{ID: 3}, row{ID: 5})
	got := c.Create(row{Name: "Nuevo"})
	assert.Equal(t, int64(6), got.ID)
	assert.Equal(t, []int64{1, 3, 5, 6}, rowIDs(c.Items()))
}

func TestController_CreateOnEmptyUsesFallback(t *testing.T) {
	c := newRows(CollapsePolicy{})
	assert.Equal(t, int64(401), c.Create(row{Name: "first"}).ID)
	assert.Equal(t, int64(402), c.Create(row{Name: "second"}).ID)
}

func TestController_UpdateReplacesOnlyMatch(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	before := c.Items()

	_, err := c.Update(row{ID: 4, Name: "Siruela", City: "Girona"})
	require.NoError(t, err)

	after := c.Items()
	require.Len(t, after, len(before))
	for i := range after {
		if after[i].ID == 4 {
			assert.Equal(t, "Girona", after[i].City)
			continue
		}
		assert.Equal(t, before[i], after[i])
	}
}

func TestController_UpdateUnknown(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	v := c.Version()
	_, err := c.Update(row{ID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, v, c.Version())
}

func TestController_DeleteExpandedClears(t *testing.T) {
	c := newRows(CollapsePolicy{}, row{ID: 1}, row{ID: 3}, row{ID: 5})
	c.Toggle(3)
	require.NoError(t, c.Delete(3))
	assert.Equal(t, []int64{1, 5}, rowIDs(c.Items()))
	_, ok := c.Expanded()
	assert.False(t, ok)
}

func TestController_DeleteOtherKeepsExpansion(t *testing.T) {
	c := newRows(CollapsePolicy{}, row{ID: 1}, row{ID: 3}, row{ID: 5})
	c.Toggle(5)
	require.NoError(t, c.Delete(1))
	id, ok := c.Expanded()
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)

	assert.ErrorIs(t, c.Delete(42), ErrNotFound)
}

func TestController_MutationsAreCopyOnWrite(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	snapshot := c.View().Items

	c.Create(row{Name: "Acantilado"})
	_, _ = c.Update(row{ID: 1, Name: "renamed"})
	require.NoError(t, c.Delete(2))

	assert.Equal(t, "Planeta", snapshot[0].Name)
	assert.Equal(t, int64(2), snapshot[1].ID)
	assert.Equal(t, uint64(3), c.Version())
}

func TestController_Apply(t *testing.T) {
	c := newRows(CollapsePolicy{}, row{ID: 1, Name: "a"})

	created, applied, err := c.Apply(form.NewCreated(row{Name: "b"}))
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, int64(2), created.ID)

	_, applied, err = c.Apply(form.NewUpdated(row{ID: 1, Name: "A"}))
	require.NoError(t, err)
	assert.True(t, applied)
	got, _ := c.Get(1)
	assert.Equal(t, "A", got.Name)

	v := c.Version()
	_, applied, err = c.Apply(form.Cancel[row]())
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, v, c.Version())

	_, applied, err = c.Apply(form.NewUpdated(row{ID: 77}))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, applied)
}

func TestController_Map(t *testing.T) {
	c := newRows(CollapsePolicy{}, cities...)
	n := c.Map(func(r row) (row, bool) {
		if r.City != "Madrid" {
			return r, false
		}
		r.City = "MAD"
		return r, true
	})
	assert.Equal(t, 3, n)
	v := c.Version()
	assert.Equal(t, 0, c.Map(func(r row) (row, bool) { return r, false }))
	assert.Equal(t, v, c.Version())
}

func TestController_ConcurrentUse(t *testing.T) {
	c := newRows(CollapsePolicy{OnFilter: true}, cities...)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch j % 4 {
				case 0:
					c.Create(row{Name: "n"})
				case 1:
					c.SetTerm("a")
				case 2:
					c.Toggle(int64(i))
				default:
					_ = c.View()
				}
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, len(cities)+8*13, c.Len())

	ids := map[int64]bool{}
	for _, r := range c.Items() {
		assert.False(t, ids[r.ID], "duplicate id %d", r.ID)
		ids[r.ID] = true
	}
}
