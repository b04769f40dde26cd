// Package dashboarddelivery manages delivery layer of the admin dashboard.
package dashboarddelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/web"
)

// Failure messages of the dashboard routes.
var (
	ErrTotalUsers        = errors.New("failed to get total users")
	ErrTotalAccounts     = errors.New("failed to get total accounts")
	ErrTotalLogins       = errors.New("failed to get total logins")
	ErrAccountsByType    = errors.New("failed to get account types")
	ErrUsersByRole       = errors.New("failed to get user roles")
	ErrTransfersByStatus = errors.New("failed to get transfer statuses")
	ErrSummary           = errors.New("internal server error")
	ErrLastTransfers     = errors.New("failed to get last transfers")
	ErrLastLogins        = errors.New("failed to get last logins")
)

// Service provides service layer interface needed by dashboard delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package dashboarddelivery
type Service interface {
	Total(ctx context.Context, c domain.Collection) (int64, error)
	Summary(ctx context.Context) (domain.Summary, error)
	Groups(ctx context.Context, g domain.Grouping) ([]domain.GroupCount, error)
	LastTransfers(ctx context.Context) ([]domain.RecentTransfer, error)
	LastLogins(ctx context.Context) ([]domain.RecentLogin, error)
}

// Handler facilitates dashboard delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns dashboard handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

func fail(gctx *gin.Context, err, msg error) {
	zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
	gctx.JSON(http.StatusInternalServerError, web.Error(msg))
}

func (h *Handler) total(c domain.Collection, key string, msg error) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		n, err := h.service.Total(gctx.Request.Context(), c)
		if err != nil {
			fail(gctx, err, msg)
			return
		}

		gctx.JSON(http.StatusOK, gin.H{key: n})
	}
}

func (h *Handler) group(g domain.Grouping, msg error) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		groups, err := h.service.Groups(gctx.Request.Context(), g)
		if err != nil {
			fail(gctx, err, msg)
			return
		}

		gctx.JSON(http.StatusOK, groups)
	}
}

// TotalUsers handles http request to count users.
func (h *Handler) TotalUsers() gin.HandlerFunc {
	return h.total(domain.Users, "totalUsers", ErrTotalUsers)
}

// TotalAccounts handles http request to count accounts.
func (h *Handler) TotalAccounts() gin.HandlerFunc {
	return h.total(domain.Accounts, "totalAccounts", ErrTotalAccounts)
}

// TotalLogins handles http request to count logins.
func (h *Handler) TotalLogins() gin.HandlerFunc {
	return h.total(domain.Logins, "totalLogins", ErrTotalLogins)
}

// AccountsByType handles http request to count accounts per type.
func (h *Handler) AccountsByType() gin.HandlerFunc {
	return h.group(domain.AccountsByType, ErrAccountsByType)
}

// UsersByRole handles http request to count users per role.
func (h *Handler) UsersByRole() gin.HandlerFunc {
	return h.group(domain.UsersByRole, ErrUsersByRole)
}

// TransfersByStatus handles http request to count transfers per status.
func (h *Handler) TransfersByStatus() gin.HandlerFunc {
	return h.group(domain.TransfersByStatus, ErrTransfersByStatus)
}

// Summary handles http request to get the headline counts.
func (h *Handler) Summary(gctx *gin.Context) {
	sum, err := h.service.Summary(gctx.Request.Context())
	if err != nil {
		fail(gctx, err, ErrSummary)
		return
	}

	gctx.JSON(http.StatusOK, sum)
}

// LastTransfers handles http request to list the most recent transfers.
func (h *Handler) LastTransfers(gctx *gin.Context) {
	transfers, err := h.service.LastTransfers(gctx.Request.Context())
	if err != nil {
		fail(gctx, err, ErrLastTransfers)
		return
	}

	gctx.JSON(http.StatusOK, transfers)
}

// LastLogins handles http request to list the most recent logins.
func (h *Handler) LastLogins(gctx *gin.Context) {
	logins, err := h.service.LastLogins(gctx.Request.Context())
	if err != nil {
		fail(gctx, err, ErrLastLogins)
		return
	}

	gctx.JSON(http.StatusOK, logins)
}

// Register mounts the dashboard routes on the group.
func (h *Handler) Register(rg gin.IRoutes) {
	rg.GET("/total-users", h.TotalUsers())
	rg.GET("/total-accounts", h.TotalAccounts())
	rg.GET("/accounts-by-type", h.AccountsByType())
	rg.GET("/users-by-role", h.UsersByRole())
	rg.GET("/transfers-by-status", h.TransfersByStatus())
	rg.GET("/total-logins", h.TotalLogins())
	rg.GET("/summary", h.Summary)
	rg.GET("/last-transfers", h.LastTransfers)
	rg.GET("/last-logins", h.LastLogins)
}
