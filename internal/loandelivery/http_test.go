package loandelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/internal/middleware"
	"github.com/go-petr/devbank/pkg/listpkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("loantype", ValidLoanType); err != nil {
			fmt.Fprintf(os.Stderr, "cannot register loantype validator: %v\n", err)
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

const testToken = "opaque-token"

var (
	customer = domain.Principal{SessionID: uuid.New(), UserID: "C1", Role: domain.RoleCustomer}
	admin    = domain.Principal{SessionID: uuid.New(), UserID: "ADM", Role: domain.RoleAdmin}

	loans = []domain.Loan{{ID: "L1", CustomerID: "C1", Status: domain.LoanPending}}

	termsBody = gin.H{"amount": "15000", "termInMonths": 24, "interestRate": "1.75", "loanType": "VEHICLE"}
	terms     = domain.LoanTerms{
		Amount:       decimal.RequireFromString("15000"),
		TermInMonths: 24,
		InterestRate: decimal.RequireFromString("1.75"),
		LoanType:     domain.LoanVehicle,
	}
)

func newServer(t *testing.T, service *MockService, principal domain.Principal) *gin.Engine {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := middleware.NewMockAuthenticator(ctrl)
	auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(principal, nil).AnyTimes()

	handler := NewHandler(service)

	server := gin.New()
	server.POST("/api/customers/:customerId/loans", middleware.AuthMiddleware(auth), handler.Apply)
	handler.RegisterAdmin(server.Group("/api/admin/loans",
		middleware.AuthMiddleware(auth), middleware.RequireRole(domain.RoleAdmin)))

	return server
}

func send(t *testing.T, server *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(middleware.AuthHeaderKey, "Bearer "+testToken)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name           string
		body           gin.H
		buildStubs     func(s *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			body: termsBody,
			buildStubs: func(s *MockService) {
				s.EXPECT().Apply(gomock.Any(), customer, "C1", terms).Times(1).Return(loans, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "UnsupportedType",
			body: gin.H{"amount": "1", "termInMonths": 12, "interestRate": "1", "loanType": "STUDENT"},
			buildStubs: func(s *MockService) {
				s.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "ZeroTerm",
			body: gin.H{"amount": "1", "termInMonths": 0, "interestRate": "1", "loanType": "PERSONAL"},
			buildStubs: func(s *MockService) {
				s.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "NegativeRate",
			body: gin.H{"amount": "1", "termInMonths": 12, "interestRate": "-1", "loanType": "PERSONAL"},
			buildStubs: func(s *MockService) {
				s.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(nil, domain.ErrInvalidInterestRate)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := send(t, newServer(t, service, customer), http.MethodPost, "/api/customers/C1/loans", tc.body)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestDecisions(t *testing.T) {
	testCases := []struct {
		name           string
		principal      domain.Principal
		path           string
		buildStubs     func(s *MockService)
		wantStatusCode int
	}{
		{
			name:      "Approve",
			principal: admin,
			path:      "/api/admin/loans/L1/approve",
			buildStubs: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), admin, "L1").Times(1).Return(loans, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "RejectApproved",
			principal: admin,
			path:      "/api/admin/loans/L1/reject",
			buildStubs: func(s *MockService) {
				s.EXPECT().Reject(gomock.Any(), admin, "L1").Times(1).Return(nil, domain.ErrInvalidTransition)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:      "ApproveMissing",
			principal: admin,
			path:      "/api/admin/loans/L9/approve",
			buildStubs: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), admin, "L9").Times(1).Return(nil, domain.ErrLoanNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:      "CustomerRejected",
			principal: customer,
			path:      "/api/admin/loans/L1/approve",
			buildStubs: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusForbidden,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := send(t, newServer(t, service, tc.principal), http.MethodPut, tc.path, nil)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestEditIgnoresStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	service.EXPECT().EditAttributes(gomock.Any(), "L1", terms).Times(1).Return(loans, nil)

	body := gin.H{"status": "APPROVED"}
	for k, v := range termsBody {
		body[k] = v
	}

	recorder := send(t, newServer(t, service, admin), http.MethodPut, "/api/admin/loans/L1", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var res struct {
		Data struct {
			Loans []domain.Loan `json:"loans"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	require.Equal(t, domain.LoanPending, res.Data.Loans[0].Status)
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	service.EXPECT().List(gomock.Any(), listpkg.Query{Search: "pending", Order: listpkg.Asc}).Times(1).Return(loans, nil)

	recorder := send(t, newServer(t, service, admin), http.MethodGet, "/api/admin/loans?search=pending", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
}
