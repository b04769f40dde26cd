package ledgerclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-petr/devbank/internal/domain"
)

const cardsPath = "/api/cards"

// CardLedger is the client of the card ledger.
type CardLedger struct {
	c *Client
}

// NewCardLedger returns CardLedger.
func NewCardLedger(baseURL string, timeout time.Duration) *CardLedger {
	return &CardLedger{c: New(baseURL, timeout)}
}

// List returns every card.
func (cl *CardLedger) List(ctx context.Context) ([]domain.Card, error) {
	result := []domain.Card{}

	if err := cl.c.do(ctx, http.MethodGet, cardsPath, nil, &result, nil); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Card{}
	}

	return result, nil
}

// Get returns the card with the given id.
func (cl *CardLedger) Get(ctx context.Context, id string) (domain.Card, error) {
	var c domain.Card

	err := cl.c.do(ctx, http.MethodGet, itemPath(cardsPath, id), nil, &c, domain.ErrCardNotFound)

	return c, err
}

// Update replaces the card record.
func (cl *CardLedger) Update(ctx context.Context, c domain.Card) error {
	return cl.c.do(ctx, http.MethodPut, itemPath(cardsPath, c.ID), c, nil, domain.ErrCardNotFound)
}

// Delete deletes the card.
func (cl *CardLedger) Delete(ctx context.Context, id string) error {
	return cl.c.do(ctx, http.MethodDelete, itemPath(cardsPath, id), nil, nil, domain.ErrCardNotFound)
}
