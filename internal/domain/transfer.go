package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrTransferNotFound indicates that the transfer is not found.
	ErrTransferNotFound = errors.New("transfer not found")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidTransferStatus indicates a status outside of the transfer lifecycle.
	ErrInvalidTransferStatus = errors.New("invalid transfer status")
	// ErrSenderNotOwned indicates that the sender account does not belong to the customer.
	ErrSenderNotOwned = errors.New("sender account does not belong to the customer")
	// ErrNoSenderAccount indicates that the customer has no account to send from.
	ErrNoSenderAccount = errors.New("customer has no account to send from")
	// ErrSameAccount indicates a transfer whose sender and receiver are the same account.
	ErrSameAccount = errors.New("sender and receiver accounts must differ")
	// ErrAccountLookup indicates that the owned accounts could not be resolved.
	ErrAccountLookup = errors.New("customer accounts lookup failed")
	// ErrTransferLookup indicates that the transfers of resolved accounts could not be read.
	ErrTransferLookup = errors.New("customer transfers lookup failed")
)

// TransferStatus is the settlement state of a transfer.
type TransferStatus string

// Transfer lifecycle states.
const (
	TransferPending   TransferStatus = "PENDING"
	TransferCompleted TransferStatus = "COMPLETED"
	TransferFailed    TransferStatus = "FAILED"
)

var transferTransitions = map[TransferStatus][]TransferStatus{
	TransferPending: {TransferCompleted, TransferFailed},
}

// Valid reports whether s is a transfer lifecycle state.
func (s TransferStatus) Valid() bool {
	switch s {
	case TransferPending, TransferCompleted, TransferFailed:
		return true
	}

	return false
}

// Next decides how a request to move from s to the given status is handled.
//
// It returns true when the transition has to be applied, false with a nil error when the
// transfer already is in that state, and ErrInvalidTransition otherwise.
func (s TransferStatus) Next(to TransferStatus) (bool, error) {
	if !to.Valid() {
		return false, ErrInvalidTransferStatus
	}

	if s == to {
		return false, nil
	}

	for _, allowed := range transferTransitions[s] {
		if allowed == to {
			return true, nil
		}
	}

	return false, ErrInvalidTransition
}

// Transfer holds money movement data between two accounts.
type Transfer struct {
	ID                string          `json:"_id"`
	SenderAccountID   string          `json:"senderAccountId"`
	ReceiverAccountID string          `json:"receiverAccountId"`
	Amount            decimal.Decimal `json:"amount"` // must be positive
	Description       string          `json:"description"`
	Status            TransferStatus  `json:"status"`
	TransferTime      time.Time       `json:"transferTime"`
}

// CreateTransferParams is the input data to submit a new transfer.
//
// An empty SenderAccountID selects the customer's default sender account.
type CreateTransferParams struct {
	SenderAccountID   string
	ReceiverAccountID string
	Amount            decimal.Decimal
	Description       string
}

// EditTransferParams holds the editable transfer attributes. Nil fields are kept.
type EditTransferParams struct {
	Description *string
	Amount      decimal.NullDecimal
}

// Apply returns a copy of t with the edited attributes. Status is never changed.
func (p EditTransferParams) Apply(t Transfer) (Transfer, error) {
	if p.Amount.Valid {
		if !p.Amount.Decimal.IsPositive() {
			return t, ErrInvalidAmount
		}

		t.Amount = p.Amount.Decimal
	}

	if p.Description != nil {
		t.Description = *p.Description
	}

	return t, nil
}

// InvolvesAny reports whether the sender or the receiver is in the account set.
func (t Transfer) InvolvesAny(accountIDs map[string]struct{}) bool {
	if _, ok := accountIDs[t.SenderAccountID]; ok {
		return true
	}

	_, ok := accountIDs[t.ReceiverAccountID]

	return ok
}
