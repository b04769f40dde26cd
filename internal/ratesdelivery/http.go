// Package ratesdelivery passes the currency and gold rates through to the clients.
package ratesdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/web"
)

// Service provides the rates needed by rates delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ratesdelivery
type Service interface {
	Currency(ctx context.Context) ([]domain.CurrencyRate, error)
	Gold(ctx context.Context) ([]domain.GoldRate, error)
}

// Handler facilitates rates delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns rates handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

// Currency handles http request to get the exchange rates.
func (h *Handler) Currency(gctx *gin.Context) {
	rates, err := h.service.Currency(gctx.Request.Context())
	if err != nil {
		web.Fail(gctx, err)
		return
	}

	if rates == nil {
		rates = []domain.CurrencyRate{}
	}

	gctx.JSON(http.StatusOK, rates)
}

// Gold handles http request to get the gold prices.
func (h *Handler) Gold(gctx *gin.Context) {
	rates, err := h.service.Gold(gctx.Request.Context())
	if err != nil {
		web.Fail(gctx, err)
		return
	}

	if rates == nil {
		rates = []domain.GoldRate{}
	}

	gctx.JSON(http.StatusOK, rates)
}

// Register mounts the rates routes on the group.
func (h *Handler) Register(rg gin.IRoutes) {
	rg.GET("/currency", h.Currency)
	rg.GET("/gold", h.Gold)
}
