package carddelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/errorspkg"
	"github.com/go-petr/devbank/pkg/listpkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("cardstatus", ValidCardStatus); err != nil {
			fmt.Fprintf(os.Stderr, "cannot register cardstatus validator: %v\n", err)
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

var cards = []domain.Card{{
	ID:         "K1",
	UserID:     "C1",
	CardNumber: "4111111111111111",
	CardType:   domain.CreditCard,
	Status:     domain.CardBlocked,
}}

func send(t *testing.T, service *MockService, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(service)

	server := gin.New()
	handler.RegisterAdmin(server.Group("/api/admin/cards"))

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(method, path, &buf))

	return recorder
}

func TestEdit(t *testing.T) {
	expiration := time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		body           gin.H
		buildStubs     func(s *MockService)
		wantStatusCode int
	}{
		{
			name: "Block",
			body: gin.H{"status": "BLOCKED", "creditLimit": "500", "expirationDate": expiration},
			buildStubs: func(s *MockService) {
				s.EXPECT().Edit(gomock.Any(), "K1", domain.EditCardParams{
					Status:         domain.CardBlocked,
					CreditLimit:    decimal.RequireFromString("500"),
					ExpirationDate: expiration,
				}).Times(1).Return(cards, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "UnsupportedStatus",
			body: gin.H{"status": "STOLEN"},
			buildStubs: func(s *MockService) {
				s.EXPECT().Edit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "NegativeLimit",
			body: gin.H{"status": "ACTIVE", "creditLimit": "-1"},
			buildStubs: func(s *MockService) {
				s.EXPECT().Edit(gomock.Any(), "K1", gomock.Any()).Times(1).Return(nil, domain.ErrInvalidCreditLimit)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "LedgerFailure",
			body: gin.H{"status": "ACTIVE"},
			buildStubs: func(s *MockService) {
				s.EXPECT().Edit(gomock.Any(), "K1", gomock.Any()).Times(1).Return(nil, errorspkg.ErrUpstream)
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := send(t, service, http.MethodPut, "/api/admin/cards/K1", tc.body)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)

	gomock.InOrder(
		service.EXPECT().List(gomock.Any(), listpkg.Query{SortBy: "creditLimit", Order: listpkg.Asc}).Times(1).Return(cards, nil),
		service.EXPECT().Delete(gomock.Any(), "K1").Times(1).Return([]domain.Card{}, nil),
	)

	recorder := send(t, service, http.MethodGet, "/api/admin/cards?sort=creditLimit", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = send(t, service, http.MethodDelete, "/api/admin/cards/K1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"data":{"cards":[]}}`, recorder.Body.String())
}
