// Package listview holds the presentation state for the client's list
// screens: the loaded items, the active filters, and the current page.
// It is a pure state container; it never talks to the network, so the
// UI can re-render from it at any time.
package listview

import (
	"strings"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 50

// State names what the view is currently showing.
type State int

const (
	// Idle means nothing has been requested yet.
	Idle State = iota
	// Loading means a fetch is in flight; Visible is empty.
	Loading
	// Loaded means items arrived and no filter is active.
	Loaded
	// Filtered means at least one filter is applied.
	Filtered
)

// Predicate reports whether an item passes one filter.
type Predicate[T any] func(T) bool

// View is the list state for one screen. All filters are ANDed; the
// page number always stays within [1, TotalPages].
type View[T any] struct {
	state    State
	pageSize int
	items    []T
	filters  map[string]Predicate[T]
	filtered []T
	page     int
}

// New returns an empty Idle view. A non-positive pageSize falls back to
// DefaultPageSize.
func New[T any](pageSize int) *View[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View[T]{
		state:    Idle,
		pageSize: pageSize,
		filters:  map[string]Predicate[T]{},
		page:     1,
	}
}

// State returns the view's current lifecycle state.
func (v *View[T]) State() State { return v.state }

// BeginLoad marks a fetch in flight. Existing items stay visible until
// SetItems replaces them.
func (v *View[T]) BeginLoad() { v.state = Loading }

// SetItems replaces the backing data. Filters are dropped and the view
// returns to page one: the new data has no relation to the old filters.
func (v *View[T]) SetItems(items []T) {
	v.items = items
	v.filters = map[string]Predicate[T]{}
	v.page = 1
	v.state = Loaded
	v.refilter()
}

// Sort orders the backing data in place and recomputes the filtered
// slice. The current page is kept (clamped).
func (v *View[T]) Sort(less func(a, b T) bool) {
	sortSlice(v.items, less)
	v.refilter()
}

// SetFilter installs or replaces the named filter and resets to page
// one. Filters compose with AND.
func (v *View[T]) SetFilter(name string, p Predicate[T]) {
	v.filters[name] = p
	v.page = 1
	v.state = Filtered
	v.refilter()
}

// ClearFilter removes one named filter and resets to page one. Removing
// a filter that is not set does nothing.
func (v *View[T]) ClearFilter(name string) {
	if _, ok := v.filters[name]; !ok {
		return
	}
	delete(v.filters, name)
	v.page = 1
	if len(v.filters) == 0 && v.state == Filtered {
		v.state = Loaded
	}
	v.refilter()
}

// ClearFilters removes every filter and resets to page one.
func (v *View[T]) ClearFilters() {
	if len(v.filters) == 0 {
		return
	}
	v.filters = map[string]Predicate[T]{}
	v.page = 1
	if v.state == Filtered {
		v.state = Loaded
	}
	v.refilter()
}

func (v *View[T]) refilter() {
	if len(v.filters) == 0 {
		v.filtered = v.items
	} else {
		v.filtered = v.filtered[:0:0]
		for _, item := range v.items {
			ok := true
			for _, p := range v.filters {
				if !p(item) {
					ok = false
					break
				}
			}
			if ok {
				v.filtered = append(v.filtered, item)
			}
		}
	}
	v.page = clamp(v.page, 1, v.TotalPages())
}

// TotalCount is the number of loaded items, ignoring filters.
func (v *View[T]) TotalCount() int { return len(v.items) }

// FilteredCount is the number of items passing the active filters.
func (v *View[T]) FilteredCount() int { return len(v.filtered) }

// TotalPages is never below one, even for an empty result.
func (v *View[T]) TotalPages() int {
	pages := (len(v.filtered) + v.pageSize - 1) / v.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Page returns the current page number, starting at one.
func (v *View[T]) Page() int { return v.page }

// SetPage moves to page n, clamped to [1, TotalPages].
func (v *View[T]) SetPage(n int) { v.page = clamp(n, 1, v.TotalPages()) }

// Next advances one page, stopping at the last.
func (v *View[T]) Next() { v.SetPage(v.page + 1) }

// Prev goes back one page, stopping at the first.
func (v *View[T]) Prev() { v.SetPage(v.page - 1) }

// First jumps to page one.
func (v *View[T]) First() { v.SetPage(1) }

// Last jumps to the final page.
func (v *View[T]) Last() { v.SetPage(v.TotalPages()) }

// Visible returns the filtered items on the current page. The slice
// aliases the view's storage; callers must not mutate it.
func (v *View[T]) Visible() []T {
	if v.state == Loading {
		return nil
	}
	start := (v.page - 1) * v.pageSize
	if start >= len(v.filtered) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ContainsFold builds a case-insensitive substring filter over the
// field selected by get. An empty query passes everything.
func ContainsFold[T any](get func(T) string, query string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(item T) bool {
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(get(item)), query)
	}
}

// Equals builds an exact-match filter over the field selected by get,
// for enum columns like role or gender.
func Equals[T any](get func(T) string, want string) Predicate[T] {
	return func(item T) bool { return get(item) == want }
}
