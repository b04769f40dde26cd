// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/dbpkg"
	"github.com/go-petr/devbank/pkg/errorspkg"
)

// RepoPGS facilitates user repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns user RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const profileQuery = `
SELECT name, surname
FROM users
WHERE id = $1
`

// Profile returns the name and surname of the customer.
func (r *RepoPGS) Profile(ctx context.Context, customerID string) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	var p domain.Profile

	err := r.db.QueryRowContext(ctx, profileQuery, customerID).Scan(&p.Name, &p.Surname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, domain.ErrCustomerNotFound
		}

		l.Error().Err(err).Send()

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const getByUsernameQuery = `
SELECT id, username, hashed_password, name, surname, role, created_at
FROM users
WHERE username = $1
`

// GetByUsername returns the user with the given username.
func (r *RepoPGS) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	var u domain.User

	err := r.db.QueryRowContext(ctx, getByUsernameQuery, username).Scan(
		&u.ID,
		&u.Username,
		&u.HashedPassword,
		&u.Name,
		&u.Surname,
		&u.Role,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.ErrUserNotFound
		}

		l.Error().Err(err).Send()

		return u, errorspkg.ErrInternal
	}

	return u, nil
}
