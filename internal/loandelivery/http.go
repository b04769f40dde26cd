// Package loandelivery manages delivery layer of loans.
package loandelivery

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

// Service provides service layer interface needed by loan delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package loandelivery
type Service interface {
	Apply(ctx context.Context, principal domain.Principal, customerID string, terms domain.LoanTerms) ([]domain.Loan, error)
	Approve(ctx context.Context, principal domain.Principal, id string) ([]domain.Loan, error)
	Reject(ctx context.Context, principal domain.Principal, id string) ([]domain.Loan, error)
	EditAttributes(ctx context.Context, id string, terms domain.LoanTerms) ([]domain.Loan, error)
	List(ctx context.Context, q listpkg.Query) ([]domain.Loan, error)
}

// Handler facilitates loan delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns loan handler.
func NewHandler(ls Service) Handler {
	return Handler{service: ls}
}

var rules = []web.StatusRule{
	{Err: domain.ErrLoanNotFound, Code: http.StatusNotFound},
	{Err: domain.ErrForbidden, Code: http.StatusForbidden},
	{Err: domain.ErrInvalidTransition, Code: http.StatusConflict},
	{Err: domain.ErrInvalidAmount, Code: http.StatusBadRequest},
	{Err: domain.ErrInvalidLoanTerm, Code: http.StatusBadRequest},
	{Err: domain.ErrInvalidInterestRate, Code: http.StatusBadRequest},
	{Err: domain.ErrInvalidLoanType, Code: http.StatusBadRequest},
	{Err: listpkg.ErrUnknownColumn, Code: http.StatusBadRequest},
}

type data struct {
	Loans []domain.Loan `json:"loans"`
}

func respond(gctx *gin.Context, loans []domain.Loan) {
	if loans == nil {
		loans = []domain.Loan{}
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{loans}})
}

type termsRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	TermInMonths int32           `json:"termInMonths" binding:"required,min=1"`
	InterestRate decimal.Decimal `json:"interestRate"`
	LoanType     domain.LoanType `json:"loanType" binding:"required,loantype"`
}

func (r termsRequest) terms() domain.LoanTerms {
	return domain.LoanTerms{
		Amount:       r.Amount,
		TermInMonths: r.TermInMonths,
		InterestRate: r.InterestRate,
		LoanType:     r.LoanType,
	}
}

type customerURI struct {
	CustomerID string `uri:"customerId" binding:"required"`
}

// Apply handles http request of a customer to apply for a loan.
func (h *Handler) Apply(gctx *gin.Context) {
	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.BindFail(gctx, err)
		return
	}

	var req termsRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindFail(gctx, err)
		return
	}

	principal, _ := middleware.PrincipalFrom(gctx)

	loans, err := h.service.Apply(gctx.Request.Context(), principal, uri.CustomerID, req.terms())
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, loans)
}

type listRequest struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// List handles http request to list and search every loan.
func (h *Handler) List(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		web.BindFail(gctx, err)
		return
	}

	loans, err := h.service.List(gctx.Request.Context(), listpkg.Query{
		Search: req.Search,
		SortBy: req.Sort,
		Order:  listpkg.ParseOrder(req.Order),
	})
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, loans)
}

type idURI struct {
	ID string `uri:"id" binding:"required"`
}

// Edit handles http request to change the loan terms. Status is not editable here.
func (h *Handler) Edit(gctx *gin.Context) {
	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.BindFail(gctx, err)
		return
	}

	var req termsRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindFail(gctx, err)
		return
	}

	loans, err := h.service.EditAttributes(gctx.Request.Context(), uri.ID, req.terms())
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, loans)
}

type decision func(ctx context.Context, principal domain.Principal, id string) ([]domain.Loan, error)

func (h *Handler) decide(call decision) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		var uri idURI
		if err := gctx.ShouldBindUri(&uri); err != nil {
			web.BindFail(gctx, err)
			return
		}

		principal, _ := middleware.PrincipalFrom(gctx)

		loans, err := call(gctx.Request.Context(), principal, uri.ID)
		if err != nil {
			web.Fail(gctx, err, rules...)
			return
		}

		respond(gctx, loans)
	}
}

// Approve handles http request of an admin to approve a loan.
func (h *Handler) Approve() gin.HandlerFunc {
	return h.decide(h.service.Approve)
}

// Reject handles http request of an admin to reject a loan.
func (h *Handler) Reject() gin.HandlerFunc {
	return h.decide(h.service.Reject)
}

// RegisterAdmin mounts the admin loan routes on the group.
func (h *Handler) RegisterAdmin(rg gin.IRoutes) {
	rg.GET("", h.List)
	rg.PUT("/:id", h.Edit)
	rg.PUT("/:id/approve", h.Approve())
	rg.PUT("/:id/reject", h.Reject())
}
