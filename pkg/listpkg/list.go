// Package listpkg implements the search and column sort contract shared by the list views.
//
// Both operations return a new slice and never reorder or shrink the source collection,
// so a list can always be re-derived from the full fetched collection.
package listpkg

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownColumn indicates a sort column the list does not support.
var ErrUnknownColumn = errors.New("unknown sort column")

// Query is the search term and sort state requested for a list.
type Query struct {
	Search string
	SortBy string
	Order  Order
}

// Columns maps the sortable column names of a list onto their comparisons.
type Columns[T any] map[string]Compare[T]

// Apply filters items by the query search term and sorts them by the query column.
// An empty column keeps the source order.
func Apply[T any](items []T, q Query, fields func(T) []string, columns Columns[T]) ([]T, error) {
	out := Filter(items, q.Search, fields)

	if q.SortBy == "" {
		return out, nil
	}

	cmp, ok := columns[q.SortBy]
	if !ok {
		return nil, ErrUnknownColumn
	}

	return Sort(out, cmp, q.Order), nil
}

// Order is a sort direction.
type Order string

// Supported sort directions.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder returns Desc for "desc" (any case) and Asc otherwise.
func ParseOrder(s string) Order {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}

	return Asc
}

// SortState is the current sort column and direction of a list.
type SortState struct {
	Column string
	Order  Order
}

// Toggle returns the state after a click on the column header.
//
// The same column flips the direction, any other column starts ascending.
func (s SortState) Toggle(column string) SortState {
	if s.Column == column && s.Order == Asc {
		return SortState{Column: column, Order: Desc}
	}

	return SortState{Column: column, Order: Asc}
}

// Filter returns the items with at least one field containing term, case-insensitively.
// An empty or blank term matches everything.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]T, 0, len(items))

	for _, it := range items {
		if needle == "" || matches(fields(it), needle) {
			out = append(out, it)
		}
	}

	return out
}

func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}

	return false
}

// Compare orders two items, returning a negative number when a sorts first.
type Compare[T any] func(a, b T) int

// Sort returns a stably sorted copy of items.
func Sort[T any](items []T, cmp Compare[T], order Order) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		if order == Desc {
			return cmp(out[j], out[i]) < 0
		}

		return cmp(out[i], out[j]) < 0
	})

	return out
}
