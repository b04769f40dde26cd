// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/listpkg"
	"github.com/go-petr/devbank/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	List(ctx context.Context, q listpkg.Query) ([]domain.Account, error)
	Edit(ctx context.Context, id string, arg domain.EditAccountParams) ([]domain.Account, error)
	Delete(ctx context.Context, id string) ([]domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

var rules = []web.StatusRule{
	{Err: domain.ErrAccountNotFound, Code: http.StatusNotFound},
	{Err: domain.ErrInvalidAccountType, Code: http.StatusBadRequest},
	{Err: domain.ErrSavingsTermsRequired, Code: http.StatusBadRequest},
	{Err: listpkg.ErrUnknownColumn, Code: http.StatusBadRequest},
}

type data struct {
	Accounts []domain.Account `json:"accounts"`
}

func respond(gctx *gin.Context, accounts []domain.Account) {
	if accounts == nil {
		accounts = []domain.Account{}
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{accounts}})
}

type listRequest struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// List handles http request to list, search and sort every account.
func (h *Handler) List(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		web.BindFail(gctx, err)
		return
	}

	accounts, err := h.service.List(gctx.Request.Context(), listpkg.Query{
		Search: req.Search,
		SortBy: req.Sort,
		Order:  listpkg.ParseOrder(req.Order),
	})
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, accounts)
}

type idURI struct {
	ID string `uri:"id" binding:"required"`
}

type editRequest struct {
	AccountType         domain.AccountType  `json:"accountType" binding:"required,accounttype"`
	UniqueAccountNumber *string             `json:"uniqueAccountNumber"`
	InterestRate        decimal.NullDecimal `json:"interestRate"`
	MaturityDate        *time.Time          `json:"maturityDate"`
}

// Edit handles http request to change the account attributes. The balance is not editable.
func (h *Handler) Edit(gctx *gin.Context) {
	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.BindFail(gctx, err)
		return
	}

	var req editRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindFail(gctx, err)
		return
	}

	accounts, err := h.service.Edit(gctx.Request.Context(), uri.ID, domain.EditAccountParams{
		AccountType:         req.AccountType,
		UniqueAccountNumber: req.UniqueAccountNumber,
		InterestRate:        req.InterestRate,
		MaturityDate:        req.MaturityDate,
	})
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, accounts)
}

// Delete handles http request to remove an account.
func (h *Handler) Delete(gctx *gin.Context) {
	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.BindFail(gctx, err)
		return
	}

	accounts, err := h.service.Delete(gctx.Request.Context(), uri.ID)
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, accounts)
}

// RegisterAdmin mounts the admin account routes on the group.
func (h *Handler) RegisterAdmin(rg gin.IRoutes) {
	rg.GET("", h.List)
	rg.PUT("/:id", h.Edit)
	rg.DELETE("/:id", h.Delete)
}
