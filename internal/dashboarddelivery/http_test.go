package dashboarddelivery

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

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
	testCases := []struct {
		name           string
		path           string
		buildStubs     func(s *MockService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "TotalUsers",
			path: "/total-users",
			buildStubs: func(s *MockService) {
				s.EXPECT().Total(gomock.Any(), domain.Users).Times(1).Return(int64(7), nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"totalUsers":7}`,
		},
		{
			name: "TotalUsersError",
			path: "/total-users",
			buildStubs: func(s *MockService) {
				s.EXPECT().Total(gomock.Any(), domain.Users).Times(1).Return(int64(0), errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"error":"failed to get total users"}`,
		},
		{
			name: "TotalAccounts",
			path: "/total-accounts",
			buildStubs: func(s *MockService) {
				s.EXPECT().Total(gomock.Any(), domain.Accounts).Times(1).Return(int64(0), nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"totalAccounts":0}`,
		},
		{
			name: "TotalLogins",
			path: "/total-logins",
			buildStubs: func(s *MockService) {
				s.EXPECT().Total(gomock.Any(), domain.Logins).Times(1).Return(int64(42), nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"totalLogins":42}`,
		},
		{
			name: "AccountsByType",
			path: "/accounts-by-type",
			buildStubs: func(s *MockService) {
				s.EXPECT().Groups(gomock.Any(), domain.AccountsByType).Times(1).Return([]domain.GroupCount{
					{ID: "CURRENT", Count: 2},
					{ID: "SAVINGS", Count: 1},
				}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `[{"_id":"CURRENT","count":2},{"_id":"SAVINGS","count":1}]`,
		},
		{
			name: "UsersByRoleEmpty",
			path: "/users-by-role",
			buildStubs: func(s *MockService) {
				s.EXPECT().Groups(gomock.Any(), domain.UsersByRole).Times(1).Return([]domain.GroupCount{}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `[]`,
		},
		{
			name: "TransfersByStatusError",
			path: "/transfers-by-status",
			buildStubs: func(s *MockService) {
				s.EXPECT().Groups(gomock.Any(), domain.TransfersByStatus).Times(1).Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"error":"failed to get transfer statuses"}`,
		},
		{
			name: "Summary",
			path: "/summary",
			buildStubs: func(s *MockService) {
				s.EXPECT().Summary(gomock.Any()).Times(1).Return(domain.Summary{
					TotalUsers: 1, TotalAccounts: 2, TotalTransfers: 3, TotalLogins: 4,
				}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"totalUsers":1,"totalAccounts":2,"totalTransfers":3,"totalLogins":4}`,
		},
		{
			name: "SummaryError",
			path: "/summary",
			buildStubs: func(s *MockService) {
				s.EXPECT().Summary(gomock.Any()).Times(1).Return(domain.Summary{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"error":"internal server error"}`,
		},
		{
			name: "LastTransfers",
			path: "/last-transfers",
			buildStubs: func(s *MockService) {
				s.EXPECT().LastTransfers(gomock.Any()).Times(1).Return([]domain.RecentTransfer{{
					Sender:      "A1",
					Receiver:    "A2",
					Amount:      decimal.RequireFromString("10.5"),
					Description: "rent",
					Status:      domain.TransferPending,
					Date:        "3/7/2024, 3:04:05 PM",
				}}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody: `[{"sender":"A1","receiver":"A2","amount":"10.5","description":"rent",` +
				`"status":"PENDING","date":"3/7/2024, 3:04:05 PM"}]`,
		},
		{
			name: "LastLoginsError",
			path: "/last-logins",
			buildStubs: func(s *MockService) {
				s.EXPECT().LastLogins(gomock.Any()).Times(1).Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"error":"failed to get last logins"}`,
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
			handler.Register(server.Group("/"))

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
			require.JSONEq(t, tc.wantBody, recorder.Body.String())
		})
	}
}
