// Package tableview adapts table-widget interaction events (sort-column
// clicks, page changes) into pure transforms over an entity slice, and
// wires them onto streams so the visible slice recomputes whenever the
// data, the sort or the page changes. It knows nothing about stores or the
// API; it only shapes what is already in memory.
package tableview

import (
	"sort"
	"strings"

	"github.com/cmu-sei/cite.go/pkg/stream"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is a requested ordering: which column, which way.
type Sort struct {
	Column    string
	Direction Direction
}

// Page is a requested slice of the sorted rows.
type Page struct {
	Index int
	Size  int
}

// Columns maps a column name to its cell accessor. A nil cell sorts as the
// lowest value.
type Columns[T any] map[string]func(T) *string

// Comparators overrides the default cell comparison per column. Negative
// means a before b.
type Comparators[T any] map[string]func(a, b T) int

// CompareCells is the default comparator: nil sorts before any defined
// value, otherwise a case-folded string comparison.
func CompareCells(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(strings.ToLower(*a), strings.ToLower(*b))
}

// SortItems returns items ordered by the requested sort. The sort is
// stable, so equal rows keep their input order. An unknown column or an
// empty column name leaves the input order untouched.
func SortItems[T any](items []T, s Sort, cols Columns[T], overrides Comparators[T]) []T {
	out := make([]T, len(items))
	copy(out, items)

	cmp, ok := overrides[s.Column]
	if !ok {
		cell, known := cols[s.Column]
		if !known {
			return out
		}
		cmp = func(a, b T) int { return CompareCells(cell(a), cell(b)) }
	}

	flip := 1
	if s.Direction == Desc {
		flip = -1
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j])*flip < 0
	})
	return out
}

// Paginate returns the contiguous slice [Index*Size, Index*Size+Size).
// Out-of-range pages yield an empty slice; Size <= 0 yields everything.
func Paginate[T any](items []T, p Page) []T {
	if p.Size <= 0 {
		return items
	}
	start := p.Index * p.Size
	if p.Index < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// View combines an items stream with sort and page request streams into a
// stream of the currently visible slice, recomputed in full on every
// emission of any input.
func View[T any](
	items *stream.Subject[[]T],
	sortReq *stream.Subject[Sort],
	pageReq *stream.Subject[Page],
	cols Columns[T],
	overrides Comparators[T],
) (*stream.Subject[[]T], *stream.Subscription) {
	return stream.CombineLatest3(items, sortReq, pageReq,
		func(rows []T, s Sort, p Page) []T {
			return Paginate(SortItems(rows, s, cols, overrides), p)
		})
}
