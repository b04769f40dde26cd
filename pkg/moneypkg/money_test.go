package moneypkg

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSumBy(t *testing.T) {
	type account struct{ balance decimal.Decimal }

	testCases := []struct {
		name     string
		balances []string
		want     string
	}{
		{name: "Empty", balances: nil, want: "0"},
		{name: "TwoAccounts", balances: []string{"100", "250.5"}, want: "350.5"},
		{name: "NoFloatDrift", balances: []string{"0.1", "0.2"}, want: "0.3"},
		{name: "Negative", balances: []string{"-20.25", "10.05"}, want: "-10.2"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			accounts := make([]account, 0, len(tc.balances))
			for _, b := range tc.balances {
				accounts = append(accounts, account{balance: decimal.RequireFromString(b)})
			}

			got := SumBy(accounts, func(a account) decimal.Decimal { return a.balance })
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}
