// Package dashboardrepo runs the aggregate queries of the admin dashboard.
package dashboardrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/dbpkg"
	"github.com/go-petr/devbank/pkg/errorspkg"
)

var countQueries = map[domain.Collection]string{
	domain.Users:     `SELECT count(*) FROM users`,
	domain.Accounts:  `SELECT count(*) FROM accounts`,
	domain.Transfers: `SELECT count(*) FROM transfers`,
	domain.Logins:    `SELECT count(*) FROM login_info`,
}

var groupQueries = map[domain.Grouping]string{
	domain.AccountsByType:    `SELECT account_type, count(*) FROM accounts GROUP BY account_type ORDER BY account_type`,
	domain.UsersByRole:       `SELECT role, count(*) FROM users GROUP BY role ORDER BY role`,
	domain.TransfersByStatus: `SELECT status, count(*) FROM transfers GROUP BY status ORDER BY status`,
}

// RecentLimit is the number of rows of the recent activity tables.
const RecentLimit = 10

// RepoPGS facilitates dashboard repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns dashboard RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// Count returns the number of records in the collection.
func (r *RepoPGS) Count(ctx context.Context, c domain.Collection) (int64, error) {
	l := zerolog.Ctx(ctx)

	query, ok := countQueries[c]
	if !ok {
		l.Error().Str("collection", string(c)).Msg("unknown collection")
		return 0, errorspkg.ErrInternal
	}

	var n int64

	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}

// Group returns the number of records per value of the grouping column.
func (r *RepoPGS) Group(ctx context.Context, g domain.Grouping) ([]domain.GroupCount, error) {
	l := zerolog.Ctx(ctx)

	query, ok := groupQueries[g]
	if !ok {
		l.Error().Str("grouping", string(g)).Msg("unknown grouping")
		return nil, errorspkg.ErrInternal
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	result := []domain.GroupCount{}

	for rows.Next() {
		var gc domain.GroupCount

		if err := rows.Scan(&gc.ID, &gc.Count); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		result = append(result, gc)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return result, nil
}

const lastTransfersQuery = `
SELECT id, sender_account_id, receiver_account_id, amount, description, status, transfer_time
FROM transfers
ORDER BY transfer_time DESC
LIMIT $1
`

// LastTransfers returns the newest transfers first.
func (r *RepoPGS) LastTransfers(ctx context.Context) ([]domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, lastTransfersQuery, RecentLimit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	result := []domain.Transfer{}

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

const lastLoginsQuery = `
SELECT user_id, ip_address, login_time
FROM login_info
ORDER BY login_time DESC
LIMIT $1
`

// LastLogins returns the newest logins first.
func (r *RepoPGS) LastLogins(ctx context.Context) ([]domain.LoginInfo, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, lastLoginsQuery, RecentLimit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	result := []domain.LoginInfo{}

	for rows.Next() {
		var li domain.LoginInfo

		if err := rows.Scan(&li.UserID, &li.IPAddress, &li.LoginTime); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		result = append(result, li)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return result, nil
}
