package listctl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type row struct {
	ID   int64
	Name string
	City string
}

func rowFields(r row) []string { return []string{r.Name, r.City} }

func rowIDs(rs []row) []int64 {
	out := make([]int64, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

var cities = []row{
	{ID: 1, Name: "Planeta", City: "Barcelona"},
	{ID: 2, Name: "Anagrama", City: "Barcelona"},
	{ID: 3, Name: "Alfaguara", City: "Madrid"},
	{ID: 4, Name: "Siruela", City: "Madrid"},
	{ID: 5, Name: "Tusquets", City: "Barcelona"},
	{ID: 6, Name: "Ediciones Cátedra", City: "Madrid"},
}

func TestFilter_BlankTermReturnsInput(t *testing.T) {
	for _, term := range []string{"", "   ", "\t"} {
		got := Filter(cities, term, rowFields, false)
		assert.Len(t, got, len(cities))
		assert.Same(t, &cities[0], &got[0], "blank term must not copy the list")
	}
}

func TestFilter_OrAcrossFieldsCaseInsensitive(t *testing.T) {
	got := Filter(cities, "  MADRID ", rowFields, false)
	assert.Equal(t, []int64{3, 4, 6}, rowIDs(got))

	got = Filter(cities, "ana", rowFields, false)
	assert.Equal(t, []int64{2}, rowIDs(got))

	// matches City of some rows and Name of another
	got = Filter(cities, "ar", rowFields, false)
	assert.Equal(t, []int64{1, 2, 3, 5}, rowIDs(got))
}

func TestFilter_EveryResultMatches(t *testing.T) {
	for _, term := range []string{"a", "bar", "rid", "tus", "zzz"} {
		for _, r := range Filter(cities, term, rowFields, false) {
			assert.True(t, matchAny(rowFields(r), NormalizeTerm(term, false), false), "row %d for %q", r.ID, term)
		}
	}
}

func TestFilter_AccentFolding(t *testing.T) {
	assert.Empty(t, Filter(cities, "catedra", rowFields, false))
	assert.Equal(t, []int64{6}, rowIDs(Filter(cities, "catedra", rowFields, true)))
	assert.Equal(t, []int64{6}, rowIDs(Filter(cities, "CÁTEDRA", rowFields, true)))
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		name        string
		index, size int
		want        []int64
	}{
		{"first page", 0, 5, []int64{1, 2, 3, 4, 5}},
		{"partial last page", 1, 5, []int64{6}},
		{"past the end", 2, 5, []int64{}},
		{"far past the end", 1 << 40, 5, []int64{}},
		{"exact fit", 2, 2, []int64{5, 6}},
		{"negative index", -1, 5, []int64{}},
		{"zero size", 0, 0, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(cities, tc.index, tc.size)
			if diff := cmp.Diff(tc.want, rowIDs(got)); diff != "" {
				t.Fatalf("ids mismatch (-want +got):\n%s", diff)
			}
			assert.NotNil(t, got)
		})
	}
}

func TestPaginate_DoesNotAlias(t *testing.T) {
	page := Paginate(cities, 0, 2)
	page[0].Name = "changed"
	assert.Equal(t, "Planeta", cities[0].Name)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 5))
	assert.Equal(t, 1, PageCount(5, 5))
	assert.Equal(t, 2, PageCount(6, 5))
	assert.Equal(t, 0, PageCount(6, 0))
}

func TestNextID(t *testing.T) {
	id := func(r row) int64 { return r.ID }
	assert.Equal(t, int64(401), NextID(nil, id, 401))
	assert.Equal(t, int64(6), NextID([]row{{ID: 1}, {ID: 5}, {ID: 3}}, id, 401))
}
