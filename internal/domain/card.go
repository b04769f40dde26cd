package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrCardNotFound indicates that the card is not found.
	ErrCardNotFound = errors.New("card not found")
	// ErrInvalidCardStatus indicates a card status outside of the supported set.
	ErrInvalidCardStatus = errors.New("invalid card status")
	// ErrInvalidCreditLimit indicates a negative credit limit.
	ErrInvalidCreditLimit = errors.New("credit limit must not be negative")
)

// CardType enumerates card products.
type CardType string

// Supported card types.
const (
	DebitCard  CardType = "DEBIT_CARD"
	CreditCard CardType = "CREDIT_CARD"
)

// CardStatus tells whether a card can be used.
type CardStatus string

// Supported card statuses.
const (
	CardActive  CardStatus = "ACTIVE"
	CardBlocked CardStatus = "BLOCKED"
)

// Valid reports whether s is a supported card status.
func (s CardStatus) Valid() bool {
	return s == CardActive || s == CardBlocked
}

// Card holds payment card data.
type Card struct {
	ID             string          `json:"cardId"`
	UserID         string          `json:"userId"`
	CardNumber     string          `json:"cardNumber"`
	CardType       CardType        `json:"cardType"`
	Status         CardStatus      `json:"status"`
	ExpirationDate time.Time       `json:"expirationDate"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	Balance        decimal.Decimal `json:"balance"`
}

// EditCardParams holds the editable card attributes.
type EditCardParams struct {
	Status         CardStatus
	CreditLimit    decimal.Decimal
	ExpirationDate time.Time
}

// Validate checks the card attributes.
func (p EditCardParams) Validate() error {
	if !p.Status.Valid() {
		return ErrInvalidCardStatus
	}

	if p.CreditLimit.IsNegative() {
		return ErrInvalidCreditLimit
	}

	return nil
}

// Apply returns a copy of c with the edited attributes.
func (p EditCardParams) Apply(c Card) Card {
	c.Status = p.Status
	c.CreditLimit = p.CreditLimit

	if !p.ExpirationDate.IsZero() {
		c.ExpirationDate = p.ExpirationDate
	}

	return c
}
