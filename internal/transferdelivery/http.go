// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/internal/middleware"
	"github.com/go-petr/devbank/pkg/listpkg"
	"github.com/go-petr/devbank/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Create(ctx context.Context, principal domain.Principal, customerID string, arg domain.CreateTransferParams) ([]domain.Transfer, error)
	List(ctx context.Context, q listpkg.Query) ([]domain.Transfer, error)
	EditAttributes(ctx context.Context, id string, arg domain.EditTransferParams) ([]domain.Transfer, error)
	Transition(ctx context.Context, id string, status domain.TransferStatus) ([]domain.Transfer, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

var rules = []web.StatusRule{
	{Err: domain.ErrTransferNotFound, Code: http.StatusNotFound},
	{Err: domain.ErrForbidden, Code: http.StatusForbidden},
	{Err: domain.ErrInvalidTransition, Code: http.StatusConflict},
	{Err: domain.ErrInvalidAmount, Code: http.StatusBadRequest},
	{Err: domain.ErrInvalidTransferStatus, Code: http.StatusBadRequest},
	{Err: domain.ErrSenderNotOwned, Code: http.StatusBadRequest},
	{Err: domain.ErrNoSenderAccount, Code: http.StatusBadRequest},
	{Err: domain.ErrSameAccount, Code: http.StatusBadRequest},
	{Err: listpkg.ErrUnknownColumn, Code: http.StatusBadRequest},
}

type data struct {
	Transfers []domain.Transfer `json:"transfers"`
	Sort      string            `json:"sort,omitempty"`
	Order     listpkg.Order     `json:"order,omitempty"`
}

func respond(gctx *gin.Context, transfers []domain.Transfer) {
	if transfers == nil {
		transfers = []domain.Transfer{}
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{Transfers: transfers}})
}

type customerURI struct {
	CustomerID string `uri:"customerId" binding:"required"`
}

type createRequest struct {
	SenderAccountID   string          `json:"senderAccountId"`
	ReceiverAccountID string          `json:"receiverAccountId" binding:"required"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description" binding:"max=255"`
}

// Create handles http request of a customer to submit a transfer.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.BindFail(gctx, err)
		return
	}

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindFail(gctx, err)
		return
	}

	principal, _ := middleware.PrincipalFrom(gctx)

	transfers, err := h.service.Create(ctx, principal, uri.CustomerID, domain.CreateTransferParams{
		SenderAccountID:   req.SenderAccountID,
		ReceiverAccountID: req.ReceiverAccountID,
		Amount:            req.Amount,
		Description:       req.Description,
	})
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, transfers)
}

type listRequest struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
	// Toggle is the clicked column header. It is applied to the sort state of sort and order.
	Toggle string `form:"toggle"`
}

// List handles http request to list, search and sort every transfer. The applied sort state
// is echoed back so that the next header click can be toggled from it.
func (h *Handler) List(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		web.BindFail(gctx, err)
		return
	}

	state := listpkg.SortState{Column: req.Sort, Order: listpkg.ParseOrder(req.Order)}
	if req.Toggle != "" {
		state = state.Toggle(req.Toggle)
	}

	transfers, err := h.service.List(gctx.Request.Context(), listpkg.Query{
		Search: req.Search,
		SortBy: state.Column,
		Order:  state.Order,
	})
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	if transfers == nil {
		transfers = []domain.Transfer{}
	}

	res := data{Transfers: transfers}
	if state.Column != "" {
		res.Sort, res.Order = state.Column, state.Order
	}

	gctx.JSON(http.StatusOK, web.Response{Data: res})
}

type idURI struct {
	ID string `uri:"id" binding:"required"`
}

type editRequest struct {
	Description *string             `json:"description" binding:"omitempty,max=255"`
	Amount      decimal.NullDecimal `json:"amount"`
}

// Edit handles http request to change transfer attributes. Status is not editable here.
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

	transfers, err := h.service.EditAttributes(gctx.Request.Context(), uri.ID, domain.EditTransferParams{
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, transfers)
}

type statusRequest struct {
	Status domain.TransferStatus `json:"status" binding:"required,transferstatus"`
}

// Transition handles http request to move a transfer through its lifecycle.
func (h *Handler) Transition(gctx *gin.Context) {
	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.BindFail(gctx, err)
		return
	}

	var req statusRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindFail(gctx, err)
		return
	}

	transfers, err := h.service.Transition(gctx.Request.Context(), uri.ID, req.Status)
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, transfers)
}

// RegisterAdmin mounts the admin transfer routes on the group.
func (h *Handler) RegisterAdmin(rg gin.IRoutes) {
	rg.GET("", h.List)
	rg.PUT("/:id", h.Edit)
	rg.PUT("/:id/status", h.Transition)
}
