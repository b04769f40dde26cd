// Package carddelivery manages delivery layer of cards.
package carddelivery

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

// Service provides service layer interface needed by card delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package carddelivery
type Service interface {
	List(ctx context.Context, q listpkg.Query) ([]domain.Card, error)
	Edit(ctx context.Context, id string, arg domain.EditCardParams) ([]domain.Card, error)
	Delete(ctx context.Context, id string) ([]domain.Card, error)
}

// Handler facilitates card delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns card handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

var rules = []web.StatusRule{
	{Err: domain.ErrCardNotFound, Code: http.StatusNotFound},
	{Err: domain.ErrInvalidCardStatus, Code: http.StatusBadRequest},
	{Err: domain.ErrInvalidCreditLimit, Code: http.StatusBadRequest},
	{Err: listpkg.ErrUnknownColumn, Code: http.StatusBadRequest},
}

type data struct {
	Cards []domain.Card `json:"cards"`
}

func respond(gctx *gin.Context, cards []domain.Card) {
	if cards == nil {
		cards = []domain.Card{}
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{cards}})
}

type listRequest struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// List handles http request to list, search and sort every card.
func (h *Handler) List(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		web.BindFail(gctx, err)
		return
	}

	cards, err := h.service.List(gctx.Request.Context(), listpkg.Query{
		Search: req.Search,
		SortBy: req.Sort,
		Order:  listpkg.ParseOrder(req.Order),
	})
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, cards)
}

type idURI struct {
	ID string `uri:"id" binding:"required"`
}

type editRequest struct {
	Status         domain.CardStatus `json:"status" binding:"required,cardstatus"`
	CreditLimit    decimal.Decimal   `json:"creditLimit"`
	ExpirationDate time.Time         `json:"expirationDate"`
}

// Edit handles http request to change the card attributes.
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

	cards, err := h.service.Edit(gctx.Request.Context(), uri.ID, domain.EditCardParams{
		Status:         req.Status,
		CreditLimit:    req.CreditLimit,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, cards)
}

// Delete handles http request to remove a card.
func (h *Handler) Delete(gctx *gin.Context) {
	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.BindFail(gctx, err)
		return
	}

	cards, err := h.service.Delete(gctx.Request.Context(), uri.ID)
	if err != nil {
		web.Fail(gctx, err, rules...)
		return
	}

	respond(gctx, cards)
}

// RegisterAdmin mounts the admin card routes on the group.
func (h *Handler) RegisterAdmin(rg gin.IRoutes) {
	rg.GET("", h.List)
	rg.PUT("/:id", h.Edit)
	rg.DELETE("/:id", h.Delete)
}
