package ledgerclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-petr/devbank/internal/domain"
)

const accountsPath = "/api/accounts"

// AccountLedger is the client of the account ledger.
type AccountLedger struct {
	c *Client
}

// NewAccountLedger returns AccountLedger.
func NewAccountLedger(baseURL string, timeout time.Duration) *AccountLedger {
	return &AccountLedger{c: New(baseURL, timeout)}
}

// List returns every account.
func (a *AccountLedger) List(ctx context.Context) ([]domain.Account, error) {
	result := []domain.Account{}

	if err := a.c.do(ctx, http.MethodGet, accountsPath, nil, &result, nil); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Account{}
	}

	return result, nil
}

// Get returns the account with the given id.
func (a *AccountLedger) Get(ctx context.Context, id string) (domain.Account, error) {
	var acc domain.Account

	err := a.c.do(ctx, http.MethodGet, itemPath(accountsPath, id), nil, &acc, domain.ErrAccountNotFound)

	return acc, err
}

// Update replaces the account record.
func (a *AccountLedger) Update(ctx context.Context, acc domain.Account) error {
	return a.c.do(ctx, http.MethodPut, itemPath(accountsPath, acc.ID), acc, nil, domain.ErrAccountNotFound)
}

// Delete deletes the account.
func (a *AccountLedger) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, itemPath(accountsPath, id), nil, nil, domain.ErrAccountNotFound)
}
