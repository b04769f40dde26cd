// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/dbpkg"
	"github.com/go-petr/devbank/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const listByCustomerQuery = `
SELECT
	account_id,
	customer_id,
	account_type,
	balance,
	unique_account_number,
	interest_rate,
	maturity_date,
	created_at
FROM accounts
WHERE customer_id = $1
ORDER BY created_at, account_id
`

// ListByCustomer returns the customer accounts, oldest first.
func (r *RepoPGS) ListByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByCustomerQuery, customerID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	result := []domain.Account{}

	for rows.Next() {
		var a domain.Account

		if err := rows.Scan(
			&a.ID,
			&a.CustomerID,
			&a.AccountType,
			&a.Balance,
			&a.UniqueAccountNumber,
			&a.InterestRate,
			&a.MaturityDate,
			&a.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return result, nil
}
