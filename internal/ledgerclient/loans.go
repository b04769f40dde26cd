package ledgerclient

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/devbank/internal/domain"
)

const loansPath = "/api/loans"

// loanWire is the loan as the ledger sends it. Older ledger builds identify a loan by
// "loanId" instead of "_id".
type loanWire struct {
	ID           string            `json:"_id"`
	LoanID       string            `json:"loanId,omitempty"`
	CustomerID   string            `json:"customerId"`
	Amount       decimal.Decimal   `json:"amount"`
	TermInMonths int32             `json:"termInMonths"`
	InterestRate decimal.Decimal   `json:"interestRate"`
	LoanType     domain.LoanType   `json:"loanType"`
	Status       domain.LoanStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	ApprovedBy   string            `json:"approvedBy,omitempty"`
}

func (w loanWire) toDomain() domain.Loan {
	id := w.ID
	if id == "" {
		id = w.LoanID
	}

	return domain.Loan{
		ID:           id,
		CustomerID:   w.CustomerID,
		Amount:       w.Amount,
		TermInMonths: w.TermInMonths,
		InterestRate: w.InterestRate,
		LoanType:     w.LoanType,
		Status:       w.Status,
		CreatedAt:    w.CreatedAt,
		ApprovedBy:   w.ApprovedBy,
	}
}

// applyLoanRequest is a loan application as the ledger accepts it. The ledger assigns the id.
type applyLoanRequest struct {
	CustomerID   string            `json:"customerId"`
	Amount       decimal.Decimal   `json:"amount"`
	TermInMonths int32             `json:"termInMonths"`
	InterestRate decimal.Decimal   `json:"interestRate"`
	LoanType     domain.LoanType   `json:"loanType"`
	Status       domain.LoanStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
}

type decisionRequest struct {
	ApprovedBy string `json:"approvedBy,omitempty"`
}

// LoanLedger is the client of the loan ledger.
type LoanLedger struct {
	c *Client
}

// NewLoanLedger returns LoanLedger.
func NewLoanLedger(baseURL string, timeout time.Duration) *LoanLedger {
	return &LoanLedger{c: New(baseURL, timeout)}
}

// List returns every loan.
func (ll *LoanLedger) List(ctx context.Context) ([]domain.Loan, error) {
	var wire []loanWire

	if err := ll.c.do(ctx, http.MethodGet, loansPath, nil, &wire, nil); err != nil {
		return nil, err
	}

	result := make([]domain.Loan, 0, len(wire))
	for _, w := range wire {
		result = append(result, w.toDomain())
	}

	return result, nil
}

// Get returns the loan with the given id.
func (ll *LoanLedger) Get(ctx context.Context, id string) (domain.Loan, error) {
	var w loanWire

	if err := ll.c.do(ctx, http.MethodGet, itemPath(loansPath, id), nil, &w, domain.ErrLoanNotFound); err != nil {
		return domain.Loan{}, err
	}

	return w.toDomain(), nil
}

// Apply submits a loan application and returns the record the ledger stored.
func (ll *LoanLedger) Apply(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	var w loanWire

	req := applyLoanRequest{
		CustomerID:   loan.CustomerID,
		Amount:       loan.Amount,
		TermInMonths: loan.TermInMonths,
		InterestRate: loan.InterestRate,
		LoanType:     loan.LoanType,
		Status:       loan.Status,
		CreatedAt:    loan.CreatedAt,
	}

	if err := ll.c.do(ctx, http.MethodPost, loansPath+"/apply", req, &w, nil); err != nil {
		return domain.Loan{}, err
	}

	return w.toDomain(), nil
}

// Update replaces the loan attributes.
func (ll *LoanLedger) Update(ctx context.Context, loan domain.Loan) error {
	return ll.c.do(ctx, http.MethodPut, itemPath(loansPath, loan.ID), loan, nil, domain.ErrLoanNotFound)
}

// Approve approves the loan on behalf of the admin.
func (ll *LoanLedger) Approve(ctx context.Context, id, approvedBy string) error {
	return ll.c.do(ctx, http.MethodPut, itemPath(loansPath, id, "approve"),
		decisionRequest{ApprovedBy: approvedBy}, nil, domain.ErrLoanNotFound)
}

// Reject rejects the loan.
func (ll *LoanLedger) Reject(ctx context.Context, id string) error {
	return ll.c.do(ctx, http.MethodPut, itemPath(loansPath, id, "reject"), nil, nil, domain.ErrLoanNotFound)
}
