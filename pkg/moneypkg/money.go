// Package moneypkg provides exact decimal arithmetic helpers for currency amounts.
package moneypkg

import (
	"github.com/shopspring/decimal"
)

// SumBy adds the amount selected from every item exactly. The sum of no items is zero.
func SumBy[T any](items []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero

	for _, it := range items {
		total = total.Add(amount(it))
	}

	return total
}
