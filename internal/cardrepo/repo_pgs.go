// Package cardrepo manages repository layer of cards.
package cardrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/dbpkg"
	"github.com/go-petr/devbank/pkg/errorspkg"
)

// RepoPGS facilitates card repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns card RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const listByUserQuery = `
SELECT
	card_id,
	user_id,
	card_number,
	card_type,
	status,
	expiration_date,
	credit_limit,
	balance
FROM cards
WHERE user_id = $1
ORDER BY card_id
`

// ListByUser returns the cards owned by the user.
func (r *RepoPGS) ListByUser(ctx context.Context, userID string) ([]domain.Card, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	result := []domain.Card{}

	for rows.Next() {
		var c domain.Card

		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.CardNumber,
			&c.CardType,
			&c.Status,
			&c.ExpirationDate,
			&c.CreditLimit,
			&c.Balance,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return result, nil
}
