// Package customerservice composes the customer scoped views out of the read model.
package customerservice

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/listpkg"
	"github.com/go-petr/devbank/pkg/moneypkg"
)

// ProfileRepo provides customer profiles.
//
//go:generate mockgen -source service.go -destination service_mock.go -package customerservice
type ProfileRepo interface {
	Profile(ctx context.Context, customerID string) (domain.Profile, error)
}

// AccountRepo provides accounts by owner.
type AccountRepo interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Account, error)
}

// TransferRepo provides transfers by account set.
type TransferRepo interface {
	ListByAccounts(ctx context.Context, accountIDs []string) ([]domain.Transfer, error)
}

// CardRepo provides cards by owner.
type CardRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Card, error)
}

// LoanRepo provides loans by owner.
type LoanRepo interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error)
}

// Service facilitates customer service layer logic.
type Service struct {
	profiles  ProfileRepo
	accounts  AccountRepo
	transfers TransferRepo
	cards     CardRepo
	loans     LoanRepo
}

// New returns customer service.
func New(p ProfileRepo, a AccountRepo, t TransferRepo, c CardRepo, l LoanRepo) *Service {
	return &Service{
		profiles:  p,
		accounts:  a,
		transfers: t,
		cards:     c,
		loans:     l,
	}
}

// Profile returns the name and surname of the customer.
func (s *Service) Profile(ctx context.Context, customerID string) (domain.Profile, error) {
	return s.profiles.Profile(ctx, customerID)
}

// Accounts returns the customer accounts, oldest first.
func (s *Service) Accounts(ctx context.Context, customerID string) ([]domain.Account, error) {
	accounts, err := s.accounts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return nonNil(accounts), nil
}

// Cards returns the customer cards.
func (s *Service) Cards(ctx context.Context, customerID string) ([]domain.Card, error) {
	cards, err := s.cards.ListByUser(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return nonNil(cards), nil
}

// Loans returns the customer loans.
func (s *Service) Loans(ctx context.Context, customerID string) ([]domain.Loan, error) {
	loans, err := s.loans.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return nonNil(loans), nil
}

// Transfers returns every transfer sent from or received by one of the customer accounts.
//
// A customer without accounts has no transfers. A failed account lookup is reported as
// domain.ErrAccountLookup and never as an empty result.
func (s *Service) Transfers(ctx context.Context, customerID string) ([]domain.Transfer, error) {
	accounts, err := s.accounts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAccountLookup, err)
	}

	return s.transfersOf(ctx, accounts)
}

func (s *Service) transfersOf(ctx context.Context, accounts []domain.Account) ([]domain.Transfer, error) {
	if len(accounts) == 0 {
		return []domain.Transfer{}, nil
	}

	owned := make(map[string]struct{}, len(accounts))
	ids := make([]string, 0, len(accounts))

	for _, a := range accounts {
		owned[a.ID] = struct{}{}
		ids = append(ids, a.ID)
	}

	transfers, err := s.transfers.ListByAccounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferLookup, err)
	}

	seen := make(map[string]struct{}, len(transfers))
	result := make([]domain.Transfer, 0, len(transfers))

	for _, t := range transfers {
		if _, dup := seen[t.ID]; dup || !t.InvolvesAny(owned) {
			continue
		}

		seen[t.ID] = struct{}{}
		result = append(result, t)
	}

	return result, nil
}

// Snapshot composes the customer dashboard.
//
// The profile decides whether the customer exists and its failure fails the snapshot. Any
// other facet that fails is replaced by an empty collection and listed in Degraded.
func (s *Service) Snapshot(ctx context.Context, customerID string) (domain.Snapshot, error) {
	l := zerolog.Ctx(ctx)

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		profileErr error

		snap   = domain.Snapshot{CustomerID: customerID}
		failed = map[string]error{}
	)

	degrade := func(facet string, err error) {
		mu.Lock()
		failed[facet] = err
		mu.Unlock()
	}

	wg.Add(4)

	go func() {
		defer wg.Done()

		snap.Profile, profileErr = s.profiles.Profile(ctx, customerID)
	}()

	// Transfers are resolved from the accounts facet, so they share its goroutine.
	go func() {
		defer wg.Done()

		accounts, err := s.Accounts(ctx, customerID)
		if err != nil {
			degrade(domain.FacetAccounts, err)
			degrade(domain.FacetTransfers, fmt.Errorf("%w: %w", domain.ErrAccountLookup, err))

			return
		}

		snap.Accounts = accounts

		transfers, err := s.transfersOf(ctx, accounts)
		if err != nil {
			degrade(domain.FacetTransfers, err)
			return
		}

		snap.RecentTransfers = recent(transfers)
	}()

	go func() {
		defer wg.Done()

		cards, err := s.Cards(ctx, customerID)
		if err != nil {
			degrade(domain.FacetCards, err)
			return
		}

		snap.Cards = cards
	}()

	go func() {
		defer wg.Done()

		loans, err := s.Loans(ctx, customerID)
		if err != nil {
			degrade(domain.FacetLoans, err)
			return
		}

		snap.Loans = loans
	}()

	wg.Wait()

	if profileErr != nil {
		return domain.Snapshot{}, profileErr
	}

	snap.Degraded = []string{}

	for _, facet := range []string{domain.FacetAccounts, domain.FacetCards, domain.FacetLoans, domain.FacetTransfers} {
		if err, ok := failed[facet]; ok {
			l.Warn().Err(err).Str("facet", facet).Str("customer_id", customerID).Msg("snapshot facet degraded")
			snap.Degraded = append(snap.Degraded, facet)
		}
	}

	snap.Accounts = nonNil(snap.Accounts)
	snap.Cards = nonNil(snap.Cards)
	snap.Loans = nonNil(snap.Loans)
	snap.RecentTransfers = nonNil(snap.RecentTransfers)

	snap.TotalBalance = moneypkg.SumBy(snap.Accounts, func(a domain.Account) decimal.Decimal {
		return a.Balance
	})

	if sender, ok := domain.DefaultSender(snap.Accounts); ok {
		snap.DefaultSenderAccountID = sender.ID
	}

	return snap, nil
}

func byTransferTime(a, b domain.Transfer) int {
	return a.TransferTime.Compare(b.TransferTime)
}

func recent(transfers []domain.Transfer) []domain.Transfer {
	sorted := listpkg.Sort(transfers, byTransferTime, listpkg.Desc)

	if len(sorted) > domain.RecentTransfersLimit {
		sorted = sorted[:domain.RecentTransfersLimit]
	}

	return sorted
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
