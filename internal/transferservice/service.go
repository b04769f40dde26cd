// Package transferservice runs the transfer workflows against the transfer ledger.
package transferservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/listpkg"
)

// Ledger provides the transfer ledger operations.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Ledger interface {
	List(ctx context.Context) ([]domain.Transfer, error)
	Get(ctx context.Context, id string) (domain.Transfer, error)
	Create(ctx context.Context, t domain.Transfer) (domain.Transfer, error)
	Update(ctx context.Context, t domain.Transfer) error
}

// Customers provides the customer scoped views a new transfer is checked and refetched with.
type Customers interface {
	Accounts(ctx context.Context, customerID string) ([]domain.Account, error)
	Transfers(ctx context.Context, customerID string) ([]domain.Transfer, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	ledger    Ledger
	customers Customers
	now       func() time.Time
}

// New returns transfer service.
func New(l Ledger, c Customers) *Service {
	return &Service{
		ledger:    l,
		customers: c,
		now:       time.Now,
	}
}

var columns = listpkg.Columns[domain.Transfer]{
	"senderAccountId": func(a, b domain.Transfer) int {
		return strings.Compare(a.SenderAccountID, b.SenderAccountID)
	},
	"receiverAccountId": func(a, b domain.Transfer) int {
		return strings.Compare(a.ReceiverAccountID, b.ReceiverAccountID)
	},
	"amount": func(a, b domain.Transfer) int {
		return a.Amount.Cmp(b.Amount)
	},
	"description": func(a, b domain.Transfer) int {
		return strings.Compare(a.Description, b.Description)
	},
	"status": func(a, b domain.Transfer) int {
		return strings.Compare(string(a.Status), string(b.Status))
	},
	"transferTime": func(a, b domain.Transfer) int {
		return a.TransferTime.Compare(b.TransferTime)
	},
}

func searchFields(t domain.Transfer) []string {
	return []string{t.SenderAccountID, t.ReceiverAccountID, t.Description}
}

// Create submits a pending transfer from one of the customer accounts and returns the
// refetched customer transfers.
func (s *Service) Create(ctx context.Context, principal domain.Principal, customerID string, arg domain.CreateTransferParams) ([]domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	if !principal.CanActFor(customerID) {
		return nil, domain.ErrForbidden
	}

	if !arg.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	accounts, err := s.customers.Accounts(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAccountLookup, err)
	}

	sender, err := senderOf(accounts, arg.SenderAccountID)
	if err != nil {
		return nil, err
	}

	if sender == arg.ReceiverAccountID {
		return nil, domain.ErrSameAccount
	}

	created, err := s.ledger.Create(ctx, domain.Transfer{
		SenderAccountID:   sender,
		ReceiverAccountID: arg.ReceiverAccountID,
		Amount:            arg.Amount,
		Description:       arg.Description,
		Status:            domain.TransferPending,
		TransferTime:      s.now(),
	})
	if err != nil {
		return nil, err
	}

	l.Info().Str("transfer_id", created.ID).Str("customer_id", customerID).Msg("transfer submitted")

	return s.customers.Transfers(ctx, customerID)
}

func senderOf(accounts []domain.Account, requested string) (string, error) {
	if requested == "" {
		def, ok := domain.DefaultSender(accounts)
		if !ok {
			return "", domain.ErrNoSenderAccount
		}

		return def.ID, nil
	}

	for _, a := range accounts {
		if a.ID == requested {
			return requested, nil
		}
	}

	return "", domain.ErrSenderNotOwned
}

// List returns the ledger transfers matching the search term, sorted by the query column.
func (s *Service) List(ctx context.Context, q listpkg.Query) ([]domain.Transfer, error) {
	transfers, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	return listpkg.Apply(transfers, q, searchFields, columns)
}

// EditAttributes changes the description and amount of a transfer and returns the refetched
// list. The status is kept as stored.
func (s *Service) EditAttributes(ctx context.Context, id string, arg domain.EditTransferParams) ([]domain.Transfer, error) {
	current, err := s.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	edited, err := arg.Apply(current)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Update(ctx, edited); err != nil {
		return nil, err
	}

	return s.ledger.List(ctx)
}

// Transition moves a transfer to the status and returns the refetched list. Requesting the
// current status again succeeds without a ledger write.
func (s *Service) Transition(ctx context.Context, id string, status domain.TransferStatus) ([]domain.Transfer, error) {
	current, err := s.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	apply, err := current.Status.Next(status)
	if err != nil {
		return nil, err
	}

	if apply {
		current.Status = status

		if err := s.ledger.Update(ctx, current); err != nil {
			return nil, err
		}

		zerolog.Ctx(ctx).Info().Str("transfer_id", id).Str("status", string(status)).Msg("transfer status changed")
	}

	return s.ledger.List(ctx)
}
