// Package sessionrepo manages repository layer of sessions.
package sessionrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/errorspkg"
)

// RepoPGS facilitates session repository layer logic.
type RepoPGS struct {
	db *sql.DB
}

// NewRepoPGS returns session RepoPGS.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO sessions (
	id,
	user_id,
	role,
	user_agent,
	client_ip,
	expires_at
) VALUES (
	$1, $2, $3, $4, $5, $6
) RETURNING id, user_id, role, user_agent, client_ip, is_blocked, expires_at, created_at
`

const createLoginInfoQuery = `
INSERT INTO login_info (user_id, ip_address, login_time)
VALUES ($1, $2, $3)
`

// Create stores the session and its login record in one transaction.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateSessionParams) (domain.Session, error) {
	l := zerolog.Ctx(ctx)

	var s domain.Session

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return s, errorspkg.ErrInternal
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				l.Error().Err(rbErr).Send()
			}
		}
	}()

	err = tx.QueryRowContext(ctx, createQuery,
		arg.ID,
		arg.UserID,
		arg.Role,
		arg.UserAgent,
		arg.ClientIP,
		arg.ExpiresAt,
	).Scan(
		&s.ID,
		&s.UserID,
		&s.Role,
		&s.UserAgent,
		&s.ClientIP,
		&s.IsBlocked,
		&s.ExpiresAt,
		&s.CreatedAt,
	)
	if err != nil {
		l.Error().Err(err).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Constraint == "sessions_user_id_fkey" {
			return s, domain.ErrUserNotFound
		}

		return s, errorspkg.ErrInternal
	}

	if _, err = tx.ExecContext(ctx, createLoginInfoQuery, s.UserID, s.ClientIP, s.CreatedAt); err != nil {
		l.Error().Err(err).Send()
		return s, errorspkg.ErrInternal
	}

	if err = tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const getQuery = `
SELECT id, user_id, role, user_agent, client_ip, is_blocked, expires_at, created_at
FROM sessions
WHERE id = $1
`

// Get returns the session with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	l := zerolog.Ctx(ctx)

	var s domain.Session

	err := r.db.QueryRowContext(ctx, getQuery, id).Scan(
		&s.ID,
		&s.UserID,
		&s.Role,
		&s.UserAgent,
		&s.ClientIP,
		&s.IsBlocked,
		&s.ExpiresAt,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, domain.ErrSessionNotFound
		}

		l.Error().Err(err).Send()

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const blockQuery = `
UPDATE sessions
SET is_blocked = true
WHERE id = $1
`

// Block blocks the session so its token is no longer accepted.
func (r *RepoPGS) Block(ctx context.Context, id uuid.UUID) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, blockQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}
