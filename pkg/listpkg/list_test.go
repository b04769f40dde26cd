package listpkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type row struct {
	name   string
	amount int
}

func byAmount(a, b row) int { return a.amount - b.amount }

func byName(a, b row) int { return strings.Compare(a.name, b.name) }

func TestToggle(t *testing.T) {
	var s SortState

	s = s.Toggle("amount")
	require.Equal(t, SortState{Column: "amount", Order: Asc}, s)

	s = s.Toggle("amount")
	require.Equal(t, SortState{Column: "amount", Order: Desc}, s)

	s = s.Toggle("amount")
	require.Equal(t, SortState{Column: "amount", Order: Asc}, s)

	s = s.Toggle("amount").Toggle("transferTime")
	require.Equal(t, SortState{Column: "transferTime", Order: Asc}, s)
}

func TestSortReverse(t *testing.T) {
	items := []row{{"c", 30}, {"a", 10}, {"d", 40}, {"b", 20}}

	asc := Sort(items, byAmount, Asc)
	desc := Sort(items, byAmount, Desc)

	require.Len(t, desc, len(asc))
	for i := range asc {
		require.Equal(t, asc[i], desc[len(desc)-1-i])
	}

	require.Equal(t, []row{{"c", 30}, {"a", 10}, {"d", 40}, {"b", 20}}, items, "source must stay untouched")
}

func TestSortStable(t *testing.T) {
	items := []row{{"x", 1}, {"y", 1}, {"a", 0}}

	got := Sort(items, byAmount, Asc)
	require.Equal(t, []row{{"a", 0}, {"x", 1}, {"y", 1}}, got)

	got = Sort(items, byName, Desc)
	require.Equal(t, []row{{"y", 1}, {"x", 1}, {"a", 0}}, got)
}

func TestFilter(t *testing.T) {
	items := []row{{"Alpha", 1}, {"beta", 2}, {"GAMMA", 3}}
	fields := func(r row) []string { return []string{r.name} }

	testCases := []struct {
		name string
		term string
		want []row
	}{
		{name: "Empty", term: "", want: items},
		{name: "Blank", term: "   ", want: items},
		{name: "CaseInsensitive", term: "ALP", want: []row{{"Alpha", 1}}},
		{name: "Substring", term: "mm", want: []row{{"GAMMA", 3}}},
		{name: "Several", term: "a", want: items},
		{name: "NoMatch", term: "zzz", want: []row{}},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(items, tc.term, fields)
			require.Equal(t, tc.want, got)
		})
	}

	require.Len(t, items, 3)
}

func TestParseOrder(t *testing.T) {
	require.Equal(t, Desc, ParseOrder("DESC"))
	require.Equal(t, Asc, ParseOrder("asc"))
	require.Equal(t, Asc, ParseOrder(""))
}

func TestApply(t *testing.T) {
	items := []row{{"carol", 30}, {"anna", 10}, {"bob", 20}, {"hannah", 5}}
	fields := func(r row) []string { return []string{r.name} }
	columns := Columns[row]{"amount": byAmount, "name": byName}

	got, err := Apply(items, Query{Search: "AN", SortBy: "amount", Order: Desc}, fields, columns)
	require.NoError(t, err)
	require.Equal(t, []row{{"anna", 10}, {"hannah", 5}}, got)

	got, err = Apply(items, Query{}, fields, columns)
	require.NoError(t, err)
	require.Equal(t, items, got)

	_, err = Apply(items, Query{SortBy: "balance"}, fields, columns)
	require.ErrorIs(t, err, ErrUnknownColumn)
}
