package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/devbank/pkg/configpkg"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := zerolog.New(&buf)

	server := gin.New()
	server.Use(RequestLogger(logger))
	server.GET("/ping", func(gctx *gin.Context) {
		zerolog.Ctx(gctx.Request.Context()).Info().Msg("inside")
		gctx.Status(http.StatusNoContent)
	})
	server.GET("/boom", func(gctx *gin.Context) {
		gctx.Status(http.StatusBadGateway)
	})

	t.Run("GeneratesRequestID", func(t *testing.T) {
		buf.Reset()

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusNoContent, recorder.Code)

		requestID := recorder.Header().Get(RequestIDHeader)
		require.NotEmpty(t, requestID)
		require.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
		require.Contains(t, buf.String(), `"message":"inside"`)
		require.Contains(t, buf.String(), `"path":"/ping"`)
	})

	t.Run("KeepsRequestID", func(t *testing.T) {
		buf.Reset()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-1")

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		require.Equal(t, "req-1", recorder.Header().Get(RequestIDHeader))
		require.Contains(t, buf.String(), `"request_id":"req-1"`)
	})

	t.Run("ServerErrorLevel", func(t *testing.T) {
		buf.Reset()

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Equal(t, http.StatusBadGateway, recorder.Code)
		require.Contains(t, buf.String(), `"level":"error"`)
	})
}

func TestCreateLogger(t *testing.T) {
	log := CreateLogger(configpkg.Config{})
	require.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log = CreateLogger(configpkg.Config{Environement: "development"})
	require.Equal(t, zerolog.TraceLevel, log.GetLevel())
}
