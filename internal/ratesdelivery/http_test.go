package ratesdelivery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/errorspkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRoutes(t *testing.T) {
	updated := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		path           string
		buildStubs     func(s *MockService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "Currency",
			path: "/api/rates/currency",
			buildStubs: func(s *MockService) {
				s.EXPECT().Currency(gomock.Any()).Times(1).Return([]domain.CurrencyRate{
					{CurrencyCode: "USD", Rate: decimal.RequireFromString("24500")},
				}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `[{"currencyCode":"USD","rate":"24500"}]`,
		},
		{
			name: "GoldEmpty",
			path: "/api/rates/gold",
			buildStubs: func(s *MockService) {
				s.EXPECT().Gold(gomock.Any()).Times(1).Return(nil, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `[]`,
		},
		{
			name: "Gold",
			path: "/api/rates/gold",
			buildStubs: func(s *MockService) {
				s.EXPECT().Gold(gomock.Any()).Times(1).Return([]domain.GoldRate{{
					GoldType:  "SJC",
					SellPrice: decimal.RequireFromString("82.5"),
					BuyPrice:  decimal.RequireFromString("80"),
					UpdatedAt: updated,
				}}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody: fmt.Sprintf(`[{"goldType":"SJC","sellPrice":"82.5","buyPrice":"80","updatedAt":%q}]`,
				updated.Format(time.RFC3339)),
		},
		{
			name: "Unreachable",
			path: "/api/rates/currency",
			buildStubs: func(s *MockService) {
				s.EXPECT().Currency(gomock.Any()).Times(1).Return(nil, errorspkg.ErrUpstream)
			},
			wantStatusCode: http.StatusBadGateway,
			wantBody:       `{"error":"upstream ledger failure"}`,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			handler := NewHandler(service)
			server := gin.New()
			handler.Register(server.Group("/api/rates"))

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, tc.wantStatusCode, recorder.Code)
			require.JSONEq(t, tc.wantBody, recorder.Body.String())
		})
	}
}
