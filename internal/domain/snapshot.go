package domain

import "github.com/shopspring/decimal"

// Snapshot facet names.
const (
	FacetAccounts  = "accounts"
	FacetCards     = "cards"
	FacetLoans     = "loans"
	FacetTransfers = "transfers"
)

// RecentTransfersLimit is the number of transfers shown on the customer dashboard.
const RecentTransfersLimit = 3

// Snapshot is the composed view-model of one customer dashboard render.
type Snapshot struct {
	CustomerID      string          `json:"customerId"`
	Profile         Profile         `json:"profile"`
	Accounts        []Account       `json:"accounts"`
	Cards           []Card          `json:"cards"`
	Loans           []Loan          `json:"loans"`
	RecentTransfers []Transfer      `json:"recentTransfers"`
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	// DefaultSenderAccountID is the oldest account, empty when the customer has none.
	DefaultSenderAccountID string `json:"defaultSenderAccountId"`
	// Degraded lists the facets that failed and were replaced by an empty collection.
	Degraded []string `json:"degraded"`
}
