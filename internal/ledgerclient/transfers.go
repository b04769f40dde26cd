package ledgerclient

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/devbank/internal/domain"
)

const transfersPath = "/api/transfers"

// createTransferRequest is a new transfer as the ledger accepts it. The ledger assigns the id.
type createTransferRequest struct {
	SenderAccountID   string                `json:"senderAccountId"`
	ReceiverAccountID string                `json:"receiverAccountId"`
	Amount            decimal.Decimal       `json:"amount"`
	Description       string                `json:"description"`
	Status            domain.TransferStatus `json:"status"`
	TransferTime      time.Time             `json:"transferTime"`
}

// TransferLedger is the client of the transfer ledger.
type TransferLedger struct {
	c *Client
}

// NewTransferLedger returns TransferLedger.
func NewTransferLedger(baseURL string, timeout time.Duration) *TransferLedger {
	return &TransferLedger{c: New(baseURL, timeout)}
}

// List returns every transfer.
func (tl *TransferLedger) List(ctx context.Context) ([]domain.Transfer, error) {
	result := []domain.Transfer{}

	if err := tl.c.do(ctx, http.MethodGet, transfersPath, nil, &result, nil); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Transfer{}
	}

	return result, nil
}

// Get returns the transfer with the given id.
func (tl *TransferLedger) Get(ctx context.Context, id string) (domain.Transfer, error) {
	var t domain.Transfer

	err := tl.c.do(ctx, http.MethodGet, itemPath(transfersPath, id), nil, &t, domain.ErrTransferNotFound)

	return t, err
}

// Create submits a new transfer and returns the record the ledger stored.
func (tl *TransferLedger) Create(ctx context.Context, t domain.Transfer) (domain.Transfer, error) {
	var created domain.Transfer

	req := createTransferRequest{
		SenderAccountID:   t.SenderAccountID,
		ReceiverAccountID: t.ReceiverAccountID,
		Amount:            t.Amount,
		Description:       t.Description,
		Status:            t.Status,
		TransferTime:      t.TransferTime,
	}

	err := tl.c.do(ctx, http.MethodPost, transfersPath, req, &created, nil)

	return created, err
}

// Update replaces the transfer record.
func (tl *TransferLedger) Update(ctx context.Context, t domain.Transfer) error {
	return tl.c.do(ctx, http.MethodPut, itemPath(transfersPath, t.ID), t, nil, domain.ErrTransferNotFound)
}
