// Package sessiondelivery manages delivery layer of sessions.
package sessiondelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/internal/middleware"
	"github.com/go-petr/devbank/pkg/errorspkg"
	"github.com/go-petr/devbank/pkg/web"
)

// Service provides service layer interface needed by session delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package sessiondelivery
type Service interface {
	Login(ctx context.Context, username, password, userAgent, clientIP string) (string, time.Time, domain.User, error)
	Logout(ctx context.Context, principal domain.Principal) error
}

// Handler facilitates session delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns session handler.
func NewHandler(ss Service) *Handler {
	return &Handler{
		service: ss,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type navigation struct {
	Role       domain.Role      `json:"role"`
	Home       string           `json:"home"`
	Navigation []domain.NavItem `json:"navigation"`
}

type loginData struct {
	User domain.User `json:"user"`
	navigation
}

func navigationOf(role domain.Role) navigation {
	return navigation{Role: role, Home: role.Home(), Navigation: role.Navigation()}
}

// Login handles http login request and returns the access token with the role navigation.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.ErrorMsg(web.GetErrorMsg(ve)))
			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	accessToken, expiresAt, user, err := h.service.Login(ctx, req.Username, req.Password,
		gctx.Request.UserAgent(), gctx.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case errors.Is(err, domain.ErrWrongPassword):
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
			return
		case errors.Is(err, domain.ErrUnknownRole):
			gctx.JSON(http.StatusForbidden, web.Error(err))
			return
		}

		l.Warn().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: expiresAt.Format(time.RFC3339),
		Data: loginData{
			User:       user,
			navigation: navigationOf(user.Role),
		},
	})
}

// Logout handles http request to end the current session.
func (h *Handler) Logout(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	principal, ok := middleware.PrincipalFrom(gctx)
	if !ok {
		gctx.JSON(http.StatusUnauthorized, web.Error(middleware.ErrAuthHeaderNotFound))
		return
	}

	if err := h.service.Logout(ctx, principal); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		zerolog.Ctx(ctx).Warn().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}

// Navigation handles http request to get the navigation table of the current role.
func (h *Handler) Navigation(gctx *gin.Context) {
	principal, ok := middleware.PrincipalFrom(gctx)
	if !ok {
		gctx.JSON(http.StatusUnauthorized, web.Error(middleware.ErrAuthHeaderNotFound))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: navigationOf(principal.Role)})
}

// Register mounts the session routes on the group. Logout and navigation go through auth.
func (h *Handler) Register(rg gin.IRoutes, auth gin.HandlerFunc) {
	rg.POST("", h.Login)
	rg.DELETE("", auth, h.Logout)
	rg.GET("/navigation", auth, h.Navigation)
}
