// Package accountservice administers accounts through the account ledger.
package accountservice

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/listpkg"
)

// Ledger provides the account ledger operations.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Ledger interface {
	List(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	Update(ctx context.Context, acc domain.Account) error
	Delete(ctx context.Context, id string) error
}

// Service facilitates account service layer logic.
type Service struct {
	ledger Ledger
}

// New returns account service.
func New(l Ledger) *Service {
	return &Service{ledger: l}
}

var columns = listpkg.Columns[domain.Account]{
	"balance": func(a, b domain.Account) int {
		return a.Balance.Cmp(b.Balance)
	},
	"accountType": func(a, b domain.Account) int {
		return strings.Compare(string(a.AccountType), string(b.AccountType))
	},
	"createdAt": func(a, b domain.Account) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	},
}

func searchFields(a domain.Account) []string {
	fields := []string{a.CustomerID}

	if a.UniqueAccountNumber != nil {
		fields = append(fields, *a.UniqueAccountNumber)
	}

	return fields
}

// List returns the ledger accounts matching the search term, sorted by the query column.
func (s *Service) List(ctx context.Context, q listpkg.Query) ([]domain.Account, error) {
	accounts, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	return listpkg.Apply(accounts, q, searchFields, columns)
}

// Edit validates and stores the account attributes and returns the refetched list.
// Invalid attributes are rejected before the ledger is contacted.
func (s *Service) Edit(ctx context.Context, id string, arg domain.EditAccountParams) ([]domain.Account, error) {
	if err := arg.Validate(); err != nil {
		return nil, err
	}

	current, err := s.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Update(ctx, arg.Apply(current)); err != nil {
		return nil, err
	}

	return s.ledger.List(ctx)
}

// Delete removes the account alone and returns the refetched list. Cards, loans and
// transfers of the account are left to their ledgers.
func (s *Service) Delete(ctx context.Context, id string) ([]domain.Account, error) {
	if err := s.ledger.Delete(ctx, id); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("account_id", id).Msg("account deleted")

	return s.ledger.List(ctx)
}
