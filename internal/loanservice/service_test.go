package loanservice

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/errorspkg"
	"github.com/go-petr/devbank/pkg/listpkg"
)

var (
	now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	customer = domain.Principal{UserID: "C1", Role: domain.RoleCustomer}
	admin    = domain.Principal{UserID: "ADM", Role: domain.RoleAdmin}

	terms = domain.LoanTerms{
		Amount:       decimal.RequireFromString("15000"),
		TermInMonths: 24,
		InterestRate: decimal.RequireFromString("1.75"),
		LoanType:     domain.LoanVehicle,
	}
)

func newService(t *testing.T) (*Service, *MockLedger, *MockCustomers) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	customers := NewMockCustomers(ctrl)

	s := New(ledger, customers)
	s.now = func() time.Time { return now }

	return s, ledger, customers
}

func TestApply(t *testing.T) {
	refetched := []domain.Loan{{ID: "L1", CustomerID: "C1", Status: domain.LoanPending}}

	testCases := []struct {
		name       string
		principal  domain.Principal
		terms      domain.LoanTerms
		buildStubs func(ledger *MockLedger, customers *MockCustomers)
		wantErr    error
	}{
		{
			name:      "OK",
			principal: customer,
			terms:     terms,
			buildStubs: func(ledger *MockLedger, customers *MockCustomers) {
				ledger.EXPECT().
					Apply(gomock.Any(), domain.Loan{
						CustomerID:   "C1",
						Amount:       terms.Amount,
						TermInMonths: terms.TermInMonths,
						InterestRate: terms.InterestRate,
						LoanType:     terms.LoanType,
						Status:       domain.LoanPending,
						CreatedAt:    now,
					}).
					Times(1).
					Return(domain.Loan{ID: "L1"}, nil)
				customers.EXPECT().Loans(gomock.Any(), "C1").Times(1).Return(refetched, nil)
			},
		},
		{
			name:      "OtherCustomer",
			principal: domain.Principal{UserID: "C2", Role: domain.RoleCustomer},
			terms:     terms,
			buildStubs: func(ledger *MockLedger, customers *MockCustomers) {
				ledger.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name:      "ZeroTerm",
			principal: customer,
			terms:     domain.LoanTerms{Amount: terms.Amount, InterestRate: terms.InterestRate, LoanType: terms.LoanType},
			buildStubs: func(ledger *MockLedger, customers *MockCustomers) {
				ledger.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidLoanTerm,
		},
		{
			name:      "LedgerFails",
			principal: customer,
			terms:     terms,
			buildStubs: func(ledger *MockLedger, customers *MockCustomers) {
				ledger.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(1).Return(domain.Loan{}, errorspkg.ErrUpstream)
				customers.EXPECT().Loans(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: errorspkg.ErrUpstream,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			s, ledger, customers := newService(t)
			tc.buildStubs(ledger, customers)

			got, err := s.Apply(context.Background(), tc.principal, "C1", tc.terms)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, refetched, got)
		})
	}
}

func TestDecisions(t *testing.T) {
	type decision func(s *Service, ctx context.Context, p domain.Principal, id string) ([]domain.Loan, error)

	approve := (*Service).Approve
	reject := (*Service).Reject

	testCases := []struct {
		name      string
		decide    decision
		approves  bool
		principal domain.Principal
		from      domain.LoanStatus
		wantCall  bool
		wantErr   error
	}{
		{name: "ApprovePending", decide: approve, approves: true, principal: admin, from: domain.LoanPending, wantCall: true},
		{name: "RejectPending", decide: reject, principal: admin, from: domain.LoanPending, wantCall: true},
		{name: "ApproveApproved", decide: approve, approves: true, principal: admin, from: domain.LoanApproved},
		{name: "RejectRejected", decide: reject, principal: admin, from: domain.LoanRejected},
		{name: "ApproveRejected", decide: approve, approves: true, principal: admin, from: domain.LoanRejected, wantErr: domain.ErrInvalidTransition},
		{name: "RejectApproved", decide: reject, principal: admin, from: domain.LoanApproved, wantErr: domain.ErrInvalidTransition},
		{name: "CustomerApproves", decide: approve, approves: true, principal: customer, from: domain.LoanPending, wantErr: domain.ErrForbidden},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			s, ledger, _ := newService(t)

			calls := 0
			if tc.wantCall {
				calls = 1
			}

			if tc.wantErr != domain.ErrForbidden {
				ledger.EXPECT().Get(gomock.Any(), "L1").Times(1).Return(domain.Loan{ID: "L1", Status: tc.from}, nil)
			}

			if tc.approves {
				ledger.EXPECT().Approve(gomock.Any(), "L1", admin.UserID).Times(calls).Return(nil)
			} else {
				ledger.EXPECT().Reject(gomock.Any(), "L1").Times(calls).Return(nil)
			}

			if tc.wantErr == nil {
				ledger.EXPECT().List(gomock.Any()).Times(1).Return([]domain.Loan{{ID: "L1"}}, nil)
			}

			_, err := tc.decide(s, context.Background(), tc.principal, "L1")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestApproveCallsLedgerOnce(t *testing.T) {
	s, ledger, _ := newService(t)

	gomock.InOrder(
		ledger.EXPECT().Get(gomock.Any(), "L1").Return(domain.Loan{ID: "L1", Status: domain.LoanPending}, nil),
		ledger.EXPECT().Approve(gomock.Any(), "L1", admin.UserID).Return(nil),
		ledger.EXPECT().List(gomock.Any()).Return([]domain.Loan{{ID: "L1", Status: domain.LoanApproved}}, nil),
		ledger.EXPECT().Get(gomock.Any(), "L1").Return(domain.Loan{ID: "L1", Status: domain.LoanApproved}, nil),
		ledger.EXPECT().List(gomock.Any()).Return([]domain.Loan{{ID: "L1", Status: domain.LoanApproved}}, nil),
	)

	_, err := s.Approve(context.Background(), admin, "L1")
	require.NoError(t, err)

	got, err := s.Approve(context.Background(), admin, "L1")
	require.NoError(t, err)
	require.Equal(t, domain.LoanApproved, got[0].Status)
}

func TestEditAttributes(t *testing.T) {
	current := domain.Loan{
		ID: "L1", CustomerID: "C1", Status: domain.LoanApproved, ApprovedBy: "ADM",
		Amount: decimal.RequireFromString("100"), TermInMonths: 6, LoanType: domain.LoanPersonal,
	}

	t.Run("KeepsDecision", func(t *testing.T) {
		s, ledger, _ := newService(t)

		want := terms.Apply(current)
		ledger.EXPECT().Get(gomock.Any(), "L1").Return(current, nil)
		ledger.EXPECT().Update(gomock.Any(), want).Return(nil)
		ledger.EXPECT().List(gomock.Any()).Return([]domain.Loan{want}, nil)

		got, err := s.EditAttributes(context.Background(), "L1", terms)
		require.NoError(t, err)
		require.Equal(t, domain.LoanApproved, got[0].Status)
		require.Equal(t, "ADM", got[0].ApprovedBy)
	})

	t.Run("InvalidType", func(t *testing.T) {
		s, ledger, _ := newService(t)

		ledger.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

		bad := terms
		bad.LoanType = "STUDENT"

		_, err := s.EditAttributes(context.Background(), "L1", bad)
		require.ErrorIs(t, err, domain.ErrInvalidLoanType)
	})
}

func TestList(t *testing.T) {
	loans := []domain.Loan{
		{ID: "L1", CustomerID: "C1", LoanType: domain.LoanVehicle, Status: domain.LoanPending},
		{ID: "L2", CustomerID: "C2", LoanType: domain.LoanMortgage, Status: domain.LoanApproved},
	}

	s, ledger, _ := newService(t)
	ledger.EXPECT().List(gomock.Any()).Return(loans, nil)

	got, err := s.List(context.Background(), listpkg.Query{Search: "approved"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "L2", got[0].ID)
}

func TestListSortsByTermAcrossFullRange(t *testing.T) {
	loans := []domain.Loan{
		{ID: "MAX", TermInMonths: math.MaxInt32},
		{ID: "MIN", TermInMonths: math.MinInt32 + 1},
		{ID: "MID", TermInMonths: 12},
	}

	testCases := []struct {
		name  string
		order listpkg.Order
		want  []string
	}{
		{name: "Asc", order: listpkg.Asc, want: []string{"MIN", "MID", "MAX"}},
		{name: "Desc", order: listpkg.Desc, want: []string{"MAX", "MID", "MIN"}},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			s, ledger, _ := newService(t)
			ledger.EXPECT().List(gomock.Any()).Return(append([]domain.Loan(nil), loans...), nil)

			got, err := s.List(context.Background(), listpkg.Query{SortBy: "termInMonths", Order: tc.order})
			require.NoError(t, err)

			ids := make([]string, len(got))
			for i, l := range got {
				ids[i] = l.ID
			}

			require.Equal(t, tc.want, ids)
		})
	}
}
