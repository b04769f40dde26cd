// Package transferrepo manages repository layer of transfers.
package transferrepo

import (
	"context"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/dbpkg"
	"github.com/go-petr/devbank/pkg/errorspkg"
)

// RepoPGS facilitates transfer repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transfer RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// A row matching on both sides is still returned once.
const listByAccountsQuery = `
SELECT
	id,
	sender_account_id,
	receiver_account_id,
	amount,
	description,
	status,
	transfer_time
FROM transfers
WHERE sender_account_id = ANY($1) OR receiver_account_id = ANY($1)
`

// ListByAccounts returns every transfer sent from or received by one of the accounts.
func (r *RepoPGS) ListByAccounts(ctx context.Context, accountIDs []string) ([]domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	result := []domain.Transfer{}

	if len(accountIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, listByAccountsQuery, pq.Array(accountIDs))
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Transfer

		if err := rows.Scan(
			&t.ID,
			&t.SenderAccountID,
			&t.ReceiverAccountID,
			&t.Amount,
			&t.Description,
			&t.Status,
			&t.TransferTime,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return result, nil
}
