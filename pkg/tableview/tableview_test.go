package tableview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmu-sei/cite.go/pkg/stream"
)

type row struct {
	id   string
	name *string
}

func named(s string) *string { return &s }

var cols = Columns[row]{
	"name": func(r row) *string { return r.name },
}

func TestSortNilsFirstAndStable(t *testing.T) {
	rows := []row{
		{id: "x", name: nil},
		{id: "y", name: named("b")},
		{id: "z", name: nil},
	}

	got := SortItems(rows, Sort{Column: "name", Direction: Asc}, cols, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "x", got[0].id, "nil cells sort lowest")
	assert.Equal(t, "z", got[1].id, "equal rows keep input order")
	assert.Equal(t, "y", got[2].id)
}

func TestSortCaseFoldedAndDescending(t *testing.T) {
	rows := []row{
		{id: "1", name: named("alpha")},
		{id: "2", name: named("Bravo")},
		{id: "3", name: named("charlie")},
	}

	asc := SortItems(rows, Sort{Column: "name", Direction: Asc}, cols, nil)
	assert.Equal(t, "1", asc[0].id)

	desc := SortItems(rows, Sort{Column: "name", Direction: Desc}, cols, nil)
	assert.Equal(t, "3", desc[0].id)
	assert.Equal(t, "1", desc[2].id)
}

func TestSortUnknownColumnKeepsOrder(t *testing.T) {
	rows := []row{{id: "b"}, {id: "a"}}
	got := SortItems(rows, Sort{Column: "bogus"}, cols, nil)
	assert.Equal(t, "b", got[0].id)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rows := []row{{id: "1", name: named("z")}, {id: "2", name: named("a")}}
	_ = SortItems(rows, Sort{Column: "name"}, cols, nil)
	assert.Equal(t, "1", rows[0].id)
}

func TestSortComparatorOverride(t *testing.T) {
	rows := []row{{id: "10"}, {id: "9"}}
	byIDLen := Comparators[row]{
		"id": func(a, b row) int { return len(a.id) - len(b.id) },
	}
	got := SortItems(rows, Sort{Column: "id"}, nil, byIDLen)
	assert.Equal(t, "9", got[0].id)
}

func TestPaginateBounds(t *testing.T) {
	rows := make([]row, 25)
	for i := range rows {
		rows[i] = row{id: fmt.Sprint(i)}
	}

	last := Paginate(rows, Page{Index: 2, Size: 10})
	require.Len(t, last, 5)
	assert.Equal(t, "20", last[0].id)
	assert.Equal(t, "24", last[4].id)

	assert.Empty(t, Paginate(rows, Page{Index: 10, Size: 10}))
	assert.Empty(t, Paginate(rows, Page{Index: -1, Size: 10}))
	assert.Len(t, Paginate(rows, Page{Index: 0, Size: 0}), 25)
}

func TestViewRecomputesOnEveryInput(t *testing.T) {
	items := stream.NewSubject([]row{
		{id: "1", name: named("c")},
		{id: "2", name: named("a")},
		{id: "3", name: named("b")},
	})
	sortReq := stream.NewSubject(Sort{Column: "name", Direction: Asc})
	pageReq := stream.NewSubject(Page{Index: 0, Size: 2})

	visible, sub := View(items, sortReq, pageReq, cols, nil)
	defer sub.Unsubscribe()

	got := visible.Value()
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].id)
	assert.Equal(t, "3", got[1].id)

	pageReq.Next(Page{Index: 1, Size: 2})
	got = visible.Value()
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].id)

	sortReq.Next(Sort{Column: "name", Direction: Desc})
	pageReq.Next(Page{Index: 0, Size: 2})
	got = visible.Value()
	assert.Equal(t, "1", got[0].id)

	items.Next([]row{{id: "9", name: named("zz")}})
	got = visible.Value()
	require.Len(t, got, 1)
	assert.Equal(t, "9", got[0].id)
}
