package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocaleTimeLayout renders timestamps the way the dashboard tables display them.
const LocaleTimeLayout = "1/2/2006, 3:04:05 PM"

// FormatLocaleTime renders t in the server local zone with LocaleTimeLayout.
func FormatLocaleTime(t time.Time) string {
	return t.Local().Format(LocaleTimeLayout)
}

// GroupCount is the number of records sharing one value of a grouping column.
type GroupCount struct {
	ID    string `json:"_id"`
	Count int64  `json:"count"`
}

// Summary holds the headline counts of the admin dashboard.
type Summary struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalAccounts  int64 `json:"totalAccounts"`
	TotalTransfers int64 `json:"totalTransfers"`
	TotalLogins    int64 `json:"totalLogins"`
}

// RecentTransfer is a transfer row of the admin dashboard.
type RecentTransfer struct {
	Sender      string          `json:"sender"`
	Receiver    string          `json:"receiver"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      TransferStatus  `json:"status"`
	Date        string          `json:"date"`
}

// RecentLogin is a login row of the admin dashboard.
type RecentLogin struct {
	UserID    string `json:"userId"`
	IPAddress string `json:"ipAddress"`
	LoginTime string `json:"loginTime"`
}

// CurrencyRate is an exchange rate published by the rates service.
type CurrencyRate struct {
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
}

// GoldRate is a gold price published by the rates service.
type GoldRate struct {
	GoldType  string          `json:"goldType"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Collection is a counted record collection of the read model.
type Collection string

// Counted collections.
const (
	Users     Collection = "users"
	Accounts  Collection = "accounts"
	Transfers Collection = "transfers"
	Logins    Collection = "logins"
)

// Grouping is a column the dashboard groups records by.
type Grouping string

// Supported groupings.
const (
	AccountsByType    Grouping = "accounts_by_type"
	UsersByRole       Grouping = "users_by_role"
	TransfersByStatus Grouping = "transfers_by_status"
)
