package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/tokenpkg"
	"github.com/go-petr/devbank/pkg/web"
)

const (
	// AuthHeaderKey is the header carrying the access token.
	AuthHeaderKey = "authorization"
	// AuthTypeBearer is the only supported authorization scheme.
	AuthTypeBearer = "bearer"
	// AuthPrincipalKey is the gin context key of the request principal.
	AuthPrincipalKey = "auth_principal"
)

var (
	// ErrAuthHeaderNotFound indicates a request without authorization header.
	ErrAuthHeaderNotFound = errors.New("authorization header is not provided")
	// ErrBadAuthHeaderFormat indicates an authorization header that is not "<type> <token>".
	ErrBadAuthHeaderFormat = errors.New("invalid authorization header format")
	// ErrUnsupportedAuthType indicates an authorization scheme other than bearer.
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
)

// Authenticator resolves an access token into the principal of the request.
//
//go:generate mockgen -source auth.go -destination auth_mock.go -package middleware
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (domain.Principal, error)
}

// AddAuthorization issues a token for the user and sets it as the request authorization header.
func AddAuthorization(
	request *http.Request,
	tokenMaker tokenpkg.Maker,
	authorizationType string,
	userID string,
	role domain.Role,
	duration time.Duration,
) error {
	token, _, err := tokenMaker.CreateToken(userID, string(role), duration)
	if err != nil {
		return err
	}

	request.Header.Set(AuthHeaderKey, fmt.Sprintf("%s %s", authorizationType, token))

	return nil
}

// AuthMiddleware establishes the request principal from the bearer token.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		l := zerolog.Ctx(gctx.Request.Context())

		authHeader := gctx.GetHeader(AuthHeaderKey)
		if len(authHeader) == 0 {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrAuthHeaderNotFound))
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrBadAuthHeaderFormat))
			return
		}

		if strings.ToLower(fields[0]) != AuthTypeBearer {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrUnsupportedAuthType))
			return
		}

		principal, err := auth.Authenticate(gctx.Request.Context(), fields[1])
		if err != nil {
			l.Info().Err(err).Send()

			switch {
			case
				errors.Is(err, tokenpkg.ErrInvalidToken),
				errors.Is(err, tokenpkg.ErrExpiredToken),
				errors.Is(err, domain.ErrSessionNotFound),
				errors.Is(err, domain.ErrBlockedSession):
				gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			default:
				gctx.AbortWithStatusJSON(http.StatusInternalServerError, web.Error(err))
			}

			return
		}

		gctx.Set(AuthPrincipalKey, principal)
		gctx.Next()
	}
}

// RequireRole lets through only principals holding the role.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		principal, ok := PrincipalFrom(gctx)
		if !ok {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrAuthHeaderNotFound))
			return
		}

		if principal.Role != role {
			gctx.AbortWithStatusJSON(http.StatusForbidden, web.Error(domain.ErrForbidden))
			return
		}

		gctx.Next()
	}
}

// PrincipalFrom returns the principal established by AuthMiddleware.
func PrincipalFrom(gctx *gin.Context) (domain.Principal, bool) {
	v, ok := gctx.Get(AuthPrincipalKey)
	if !ok {
		return domain.Principal{}, false
	}

	p, ok := v.(domain.Principal)

	return p, ok
}
