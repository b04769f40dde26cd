// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAccountType indicates an account type outside of the supported set.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrSavingsTermsRequired indicates a savings account without interest rate or maturity date.
	ErrSavingsTermsRequired = errors.New("interest rate and maturity date are required for savings accounts")
)

// AccountType enumerates the kinds of accounts.
type AccountType string

// Supported account types.
const (
	AccountTypeCurrent AccountType = "CURRENT"
	AccountTypeSavings AccountType = "SAVINGS"
)

// Valid reports whether t is a supported account type.
func (t AccountType) Valid() bool {
	return t == AccountTypeCurrent || t == AccountTypeSavings
}

// Account holds a customer balance. The account ledger is its system of record.
type Account struct {
	ID                  string              `json:"accountId"`
	CustomerID          string              `json:"customerId"`
	AccountType         AccountType         `json:"accountType"`
	Balance             decimal.Decimal     `json:"balance"`
	UniqueAccountNumber *string             `json:"uniqueAccountNumber"`
	InterestRate        decimal.NullDecimal `json:"interestRate"`
	MaturityDate        *time.Time          `json:"maturityDate,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// EditAccountParams holds the editable account attributes. Balance is owned by settlement
// and is never part of an edit.
type EditAccountParams struct {
	AccountType         AccountType
	UniqueAccountNumber *string
	InterestRate        decimal.NullDecimal
	MaturityDate        *time.Time
}

// Validate checks the attributes before anything is sent to the ledger.
func (p EditAccountParams) Validate() error {
	if !p.AccountType.Valid() {
		return ErrInvalidAccountType
	}

	if p.AccountType == AccountTypeSavings {
		if !p.InterestRate.Valid || !p.InterestRate.Decimal.IsPositive() {
			return ErrSavingsTermsRequired
		}

		if p.MaturityDate == nil || p.MaturityDate.IsZero() {
			return ErrSavingsTermsRequired
		}
	}

	return nil
}

// Apply returns a copy of a with the edited attributes.
func (p EditAccountParams) Apply(a Account) Account {
	a.AccountType = p.AccountType
	a.UniqueAccountNumber = p.UniqueAccountNumber

	if p.AccountType == AccountTypeSavings {
		a.InterestRate = p.InterestRate
		a.MaturityDate = p.MaturityDate
	} else {
		a.InterestRate = decimal.NullDecimal{}
		a.MaturityDate = nil
	}

	return a
}

// DefaultSender returns the oldest account, the first one on equal creation times.
func DefaultSender(accounts []Account) (Account, bool) {
	if len(accounts) == 0 {
		return Account{}, false
	}

	oldest := accounts[0]

	for _, a := range accounts[1:] {
		if a.CreatedAt.Before(oldest.CreatedAt) {
			oldest = a
		}
	}

	return oldest, true
}
