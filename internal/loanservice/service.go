// Package loanservice runs the loan application and decision workflows against the loan ledger.
package loanservice

import (
	"cmp"
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/listpkg"
)

// Ledger provides the loan ledger operations.
//
//go:generate mockgen -source service.go -destination service_mock.go -package loanservice
type Ledger interface {
	List(ctx context.Context) ([]domain.Loan, error)
	Get(ctx context.Context, id string) (domain.Loan, error)
	Apply(ctx context.Context, loan domain.Loan) (domain.Loan, error)
	Update(ctx context.Context, loan domain.Loan) error
	Approve(ctx context.Context, id, approvedBy string) error
	Reject(ctx context.Context, id string) error
}

// Customers provides the customer loans refetched after an application.
type Customers interface {
	Loans(ctx context.Context, customerID string) ([]domain.Loan, error)
}

// Service facilitates loan service layer logic.
type Service struct {
	ledger    Ledger
	customers Customers
	now       func() time.Time
}

// New returns loan service.
func New(l Ledger, c Customers) *Service {
	return &Service{
		ledger:    l,
		customers: c,
		now:       time.Now,
	}
}

var columns = listpkg.Columns[domain.Loan]{
	"amount": func(a, b domain.Loan) int {
		return a.Amount.Cmp(b.Amount)
	},
	"termInMonths": func(a, b domain.Loan) int {
		return cmp.Compare(a.TermInMonths, b.TermInMonths)
	},
	"interestRate": func(a, b domain.Loan) int {
		return a.InterestRate.Cmp(b.InterestRate)
	},
	"createdAt": func(a, b domain.Loan) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	},
	"status": func(a, b domain.Loan) int {
		return strings.Compare(string(a.Status), string(b.Status))
	},
}

func searchFields(l domain.Loan) []string {
	return []string{l.CustomerID, string(l.LoanType), string(l.Status)}
}

// Apply submits a pending loan application of the customer and returns the refetched
// customer loans.
func (s *Service) Apply(ctx context.Context, principal domain.Principal, customerID string, terms domain.LoanTerms) ([]domain.Loan, error) {
	if !principal.CanActFor(customerID) {
		return nil, domain.ErrForbidden
	}

	if err := terms.Validate(); err != nil {
		return nil, err
	}

	created, err := s.ledger.Apply(ctx, terms.Apply(domain.Loan{
		CustomerID: customerID,
		Status:     domain.LoanPending,
		CreatedAt:  s.now(),
	}))
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("loan_id", created.ID).Str("customer_id", customerID).Msg("loan applied")

	return s.customers.Loans(ctx, customerID)
}

// Approve approves a pending loan on behalf of the admin and returns the refetched list.
func (s *Service) Approve(ctx context.Context, principal domain.Principal, id string) ([]domain.Loan, error) {
	return s.decide(ctx, principal, id, domain.LoanApproved, func() error {
		return s.ledger.Approve(ctx, id, principal.UserID)
	})
}

// Reject rejects a pending loan and returns the refetched list.
func (s *Service) Reject(ctx context.Context, principal domain.Principal, id string) ([]domain.Loan, error) {
	return s.decide(ctx, principal, id, domain.LoanRejected, func() error {
		return s.ledger.Reject(ctx, id)
	})
}

// decide runs the ledger call only when the loan moves to the status. A loan already in it
// is left as is.
func (s *Service) decide(ctx context.Context, principal domain.Principal, id string, to domain.LoanStatus, call func() error) ([]domain.Loan, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	current, err := s.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	apply, err := current.Status.Next(to)
	if err != nil {
		return nil, err
	}

	if apply {
		if err := call(); err != nil {
			return nil, err
		}

		zerolog.Ctx(ctx).Info().Str("loan_id", id).Str("status", string(to)).Str("admin", principal.UserID).Send()
	}

	return s.ledger.List(ctx)
}

// EditAttributes replaces the loan terms and returns the refetched list. Status and decision
// fields are kept.
func (s *Service) EditAttributes(ctx context.Context, id string, terms domain.LoanTerms) ([]domain.Loan, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	current, err := s.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Update(ctx, terms.Apply(current)); err != nil {
		return nil, err
	}

	return s.ledger.List(ctx)
}

// List returns the ledger loans matching the search term, sorted by the query column.
func (s *Service) List(ctx context.Context, q listpkg.Query) ([]domain.Loan, error) {
	loans, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	return listpkg.Apply(loans, q, searchFields, columns)
}
