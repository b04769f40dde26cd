package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/devbank/pkg/errorspkg"
)

var errMissing = errors.New("missing")

func TestStatusOf(t *testing.T) {
	rules := []StatusRule{{Err: errMissing, Code: http.StatusNotFound}}

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "Rule", err: errMissing, want: http.StatusNotFound},
		{name: "WrappedRule", err: fmt.Errorf("lookup: %w", errMissing), want: http.StatusNotFound},
		{name: "Upstream", err: fmt.Errorf("%w: timeout", errorspkg.ErrUpstream), want: http.StatusBadGateway},
		{name: "Other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, StatusOf(tc.err, rules...), tc.name)
	}
}

func TestFailHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	gctx, _ := gin.CreateTestContext(recorder)
	gctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(gctx, errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.JSONEq(t, `{"error":"internal"}`, recorder.Body.String())
}
