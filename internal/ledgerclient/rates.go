package ledgerclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-petr/devbank/internal/domain"
)

// Rates is the client of the currency and gold rates service.
type Rates struct {
	c *Client
}

// NewRates returns Rates.
func NewRates(baseURL string, timeout time.Duration) *Rates {
	return &Rates{c: New(baseURL, timeout)}
}

// Currency returns the published exchange rates.
func (r *Rates) Currency(ctx context.Context) ([]domain.CurrencyRate, error) {
	result := []domain.CurrencyRate{}

	if err := r.c.do(ctx, http.MethodGet, "/api/currency-rates", nil, &result, nil); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.CurrencyRate{}
	}

	return result, nil
}

// Gold returns the published gold prices.
func (r *Rates) Gold(ctx context.Context) ([]domain.GoldRate, error) {
	result := []domain.GoldRate{}

	if err := r.c.do(ctx, http.MethodGet, "/api/gold-rates", nil, &result, nil); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.GoldRate{}
	}

	return result, nil
}
