// Package customerdelivery manages delivery layer of the customer scoped views.
package customerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/web"
)

// Failure messages of the customer routes.
var (
	ErrAccounts  = errors.New("internal server error")
	ErrCards     = errors.New("failed to get cards")
	ErrLoans     = errors.New("failed to get loans")
	ErrTransfers = errors.New("failed to get transfers")
	ErrProfile   = errors.New("failed to get customer")
	ErrSnapshot  = errors.New("failed to get customer snapshot")
)

// Service provides service layer interface needed by customer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package customerdelivery
type Service interface {
	Profile(ctx context.Context, customerID string) (domain.Profile, error)
	Accounts(ctx context.Context, customerID string) ([]domain.Account, error)
	Cards(ctx context.Context, customerID string) ([]domain.Card, error)
	Loans(ctx context.Context, customerID string) ([]domain.Loan, error)
	Transfers(ctx context.Context, customerID string) ([]domain.Transfer, error)
	Snapshot(ctx context.Context, customerID string) (domain.Snapshot, error)
}

// Handler facilitates customer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns customer handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// CustomerIDParam is the route parameter naming the customer.
const CustomerIDParam = "customerId"

func fail(gctx *gin.Context, err, msg error) {
	zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Str("customer_id", gctx.Param(CustomerIDParam)).Send()
	gctx.JSON(http.StatusInternalServerError, web.Error(msg))
}

// list adapts a customer collection lookup into a handler answering with the raw collection.
func list[T any](get func(context.Context, string) ([]T, error), msg error) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		items, err := get(gctx.Request.Context(), gctx.Param(CustomerIDParam))
		if err != nil {
			fail(gctx, err, msg)
			return
		}

		if items == nil {
			items = []T{}
		}

		gctx.JSON(http.StatusOK, items)
	}
}

// Accounts handles http request to list the customer accounts.
func (h *Handler) Accounts() gin.HandlerFunc {
	return list(h.service.Accounts, ErrAccounts)
}

// Cards handles http request to list the customer cards.
func (h *Handler) Cards() gin.HandlerFunc {
	return list(h.service.Cards, ErrCards)
}

// Loans handles http request to list the customer loans.
func (h *Handler) Loans() gin.HandlerFunc {
	return list(h.service.Loans, ErrLoans)
}

// Transfers handles http request to list every transfer touching a customer account.
func (h *Handler) Transfers() gin.HandlerFunc {
	return list(h.service.Transfers, ErrTransfers)
}

// Profile handles http request to get the customer name and surname.
func (h *Handler) Profile(gctx *gin.Context) {
	profile, err := h.service.Profile(gctx.Request.Context(), gctx.Param(CustomerIDParam))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		fail(gctx, err, ErrProfile)

		return
	}

	gctx.JSON(http.StatusOK, profile)
}

// Snapshot handles http request to compose the customer dashboard.
func (h *Handler) Snapshot(gctx *gin.Context) {
	snap, err := h.service.Snapshot(gctx.Request.Context(), gctx.Param(CustomerIDParam))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		fail(gctx, err, ErrSnapshot)

		return
	}

	gctx.JSON(http.StatusOK, snap)
}

// Register mounts the customer read routes on the group.
func (h *Handler) Register(rg gin.IRoutes) {
	rg.GET("/:customerId", h.Profile)
	rg.GET("/:customerId/accounts", h.Accounts())
	rg.GET("/:customerId/cards", h.Cards())
	rg.GET("/:customerId/loans", h.Loans())
	rg.GET("/:customerId/transfers", h.Transfers())
	rg.GET("/:customerId/snapshot", h.Snapshot)
}
