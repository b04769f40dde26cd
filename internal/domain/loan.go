package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrLoanNotFound indicates that the loan is not found.
	ErrLoanNotFound = errors.New("loan not found")
	// ErrInvalidTransition indicates a status change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("status transition not allowed")
	// ErrInvalidLoanType indicates a loan type outside of the supported set.
	ErrInvalidLoanType = errors.New("invalid loan type")
	// ErrInvalidLoanTerm indicates a non positive loan term.
	ErrInvalidLoanTerm = errors.New("term in months must be positive")
	// ErrInvalidInterestRate indicates a negative interest rate.
	ErrInvalidInterestRate = errors.New("interest rate must not be negative")
)

// LoanType enumerates loan products.
type LoanType string

// Supported loan types.
const (
	LoanPersonal LoanType = "PERSONAL"
	LoanVehicle  LoanType = "VEHICLE"
	LoanBusiness LoanType = "BUSINESS"
	LoanMortgage LoanType = "MORTGAGE"
)

// Valid reports whether t is a supported loan type.
func (t LoanType) Valid() bool {
	switch t {
	case LoanPersonal, LoanVehicle, LoanBusiness, LoanMortgage:
		return true
	}

	return false
}

// LoanStatus is the decision state of a loan application.
type LoanStatus string

// Loan lifecycle states.
const (
	LoanPending  LoanStatus = "PENDING"
	LoanApproved LoanStatus = "APPROVED"
	LoanRejected LoanStatus = "REJECTED"
)

var loanTransitions = map[LoanStatus][]LoanStatus{
	LoanPending: {LoanApproved, LoanRejected},
}

// Next decides how a request to move from s to the given status is handled.
//
// It returns true when the transition has to be applied, false with a nil error when the
// loan already is in that state, and ErrInvalidTransition otherwise.
func (s LoanStatus) Next(to LoanStatus) (bool, error) {
	if s == to {
		return false, nil
	}

	for _, allowed := range loanTransitions[s] {
		if allowed == to {
			return true, nil
		}
	}

	return false, ErrInvalidTransition
}

// Loan holds a loan application and its decision.
//
// ID is the canonical identifier. Ledgers that send "loanId" are mapped onto it at the
// client boundary.
type Loan struct {
	ID           string          `json:"_id"`
	CustomerID   string          `json:"customerId"`
	Amount       decimal.Decimal `json:"amount"`
	TermInMonths int32           `json:"termInMonths"`
	InterestRate decimal.Decimal `json:"interestRate"`
	LoanType     LoanType        `json:"loanType"`
	Status       LoanStatus      `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	ApprovedBy   string          `json:"approvedBy,omitempty"`
}

// LoanTerms holds the customer chosen attributes of a loan.
type LoanTerms struct {
	Amount       decimal.Decimal
	TermInMonths int32
	InterestRate decimal.Decimal
	LoanType     LoanType
}

// Validate checks the loan terms.
func (lt LoanTerms) Validate() error {
	if !lt.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if lt.TermInMonths <= 0 {
		return ErrInvalidLoanTerm
	}

	if lt.InterestRate.IsNegative() {
		return ErrInvalidInterestRate
	}

	if !lt.LoanType.Valid() {
		return ErrInvalidLoanType
	}

	return nil
}

// Apply returns a copy of l carrying the terms. Status and decision fields are kept.
func (lt LoanTerms) Apply(l Loan) Loan {
	l.Amount = lt.Amount
	l.TermInMonths = lt.TermInMonths
	l.InterestRate = lt.InterestRate
	l.LoanType = lt.LoanType

	return l
}
