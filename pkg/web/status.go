package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/pkg/errorspkg"
)

// StatusRule maps a sentinel error onto a response code.
type StatusRule struct {
	Err  error
	Code int
}

// StatusOf returns the code of the first rule err matches. Upstream failures without a rule
// answer 502, anything else 500.
func StatusOf(err error, rules ...StatusRule) int {
	for _, r := range rules {
		if errors.Is(err, r.Err) {
			return r.Code
		}
	}

	if errors.Is(err, errorspkg.ErrUpstream) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// Fail writes the error response for err. Server side failures are logged and never leak
// their cause to the client.
func Fail(gctx *gin.Context, err error, rules ...StatusRule) {
	l := zerolog.Ctx(gctx.Request.Context())

	code := StatusOf(err, rules...)

	switch code {
	case http.StatusInternalServerError:
		l.Error().Err(err).Send()
		gctx.JSON(code, Error(errorspkg.ErrInternal))
	case http.StatusBadGateway:
		l.Error().Err(err).Send()
		gctx.JSON(code, Error(errorspkg.ErrUpstream))
	default:
		l.Info().Err(err).Send()
		gctx.JSON(code, Error(err))
	}
}

// BindFail writes the 400 response of a request that could not be bound.
func BindFail(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, ErrorMsg(GetErrorMsg(ve)))
		return
	}

	gctx.JSON(http.StatusBadRequest, Error(err))
}
