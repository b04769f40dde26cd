// Package cardservice administers cards through the card ledger.
package cardservice

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/listpkg"
)

// Ledger provides the card ledger operations.
//
//go:generate mockgen -source service.go -destination service_mock.go -package cardservice
type Ledger interface {
	List(ctx context.Context) ([]domain.Card, error)
	Get(ctx context.Context, id string) (domain.Card, error)
	Update(ctx context.Context, c domain.Card) error
	Delete(ctx context.Context, id string) error
}

// Service facilitates card service layer logic.
type Service struct {
	ledger Ledger
}

// New returns card service.
func New(l Ledger) *Service {
	return &Service{ledger: l}
}

var columns = listpkg.Columns[domain.Card]{
	"creditLimit": func(a, b domain.Card) int {
		return a.CreditLimit.Cmp(b.CreditLimit)
	},
	"expirationDate": func(a, b domain.Card) int {
		return a.ExpirationDate.Compare(b.ExpirationDate)
	},
	"status": func(a, b domain.Card) int {
		return strings.Compare(string(a.Status), string(b.Status))
	},
}

func searchFields(c domain.Card) []string {
	return []string{c.CardNumber, c.UserID}
}

// List returns the ledger cards matching the search term, sorted by the query column.
func (s *Service) List(ctx context.Context, q listpkg.Query) ([]domain.Card, error) {
	cards, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	return listpkg.Apply(cards, q, searchFields, columns)
}

// Edit validates and stores the card attributes and returns the refetched list.
func (s *Service) Edit(ctx context.Context, id string, arg domain.EditCardParams) ([]domain.Card, error) {
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

// Delete removes the card and returns the refetched list.
func (s *Service) Delete(ctx context.Context, id string) ([]domain.Card, error) {
	if err := s.ledger.Delete(ctx, id); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("card_id", id).Msg("card deleted")

	return s.ledger.List(ctx)
}
