// Package loanrepo manages repository layer of loans.
package loanrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/dbpkg"
	"github.com/go-petr/devbank/pkg/errorspkg"
)

// RepoPGS facilitates loan repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns loan RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const listByCustomerQuery = `
SELECT
	id,
	customer_id,
	amount,
	term_in_months,
	interest_rate,
	loan_type,
	status,
	approved_by,
	created_at
FROM loans
WHERE customer_id = $1
ORDER BY created_at
`

// ListByCustomer returns the loans of the customer.
func (r *RepoPGS) ListByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByCustomerQuery, customerID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	result := []domain.Loan{}

	for rows.Next() {
		var loan domain.Loan

		if err := rows.Scan(
			&loan.ID,
			&loan.CustomerID,
			&loan.Amount,
			&loan.TermInMonths,
			&loan.InterestRate,
			&loan.LoanType,
			&loan.Status,
			&loan.ApprovedBy,
			&loan.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		result = append(result, loan)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return result, nil
}
