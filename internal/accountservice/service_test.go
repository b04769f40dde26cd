package accountservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/errorspkg"
	"github.com/go-petr/devbank/pkg/listpkg"
)

func strPtr(s string) *string { return &s }

func TestEdit(t *testing.T) {
	maturity := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	current := domain.Account{
		ID:                  "A1",
		CustomerID:          "C1",
		AccountType:         domain.AccountTypeCurrent,
		Balance:             decimal.RequireFromString("100"),
		UniqueAccountNumber: strPtr("TR01"),
	}

	testCases := []struct {
		name       string
		arg        domain.EditAccountParams
		buildStubs func(ledger *MockLedger)
		wantErr    error
	}{
		{
			name: "OKSavings",
			arg: domain.EditAccountParams{
				AccountType:         domain.AccountTypeSavings,
				UniqueAccountNumber: strPtr("TR02"),
				InterestRate:        decimal.NewNullDecimal(decimal.RequireFromString("3.5")),
				MaturityDate:        &maturity,
			},
			buildStubs: func(ledger *MockLedger) {
				want := current
				want.AccountType = domain.AccountTypeSavings
				want.UniqueAccountNumber = strPtr("TR02")
				want.InterestRate = decimal.NewNullDecimal(decimal.RequireFromString("3.5"))
				want.MaturityDate = &maturity

				gomock.InOrder(
					ledger.EXPECT().Get(gomock.Any(), "A1").Times(1).Return(current, nil),
					ledger.EXPECT().Update(gomock.Any(), want).Times(1).Return(nil),
					ledger.EXPECT().List(gomock.Any()).Times(1).Return([]domain.Account{want}, nil),
				)
			},
		},
		{
			name: "SavingsWithoutMaturity",
			arg: domain.EditAccountParams{
				AccountType:  domain.AccountTypeSavings,
				InterestRate: decimal.NewNullDecimal(decimal.RequireFromString("3.5")),
			},
			buildStubs: func(ledger *MockLedger) {
				ledger.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				ledger.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrSavingsTermsRequired,
		},
		{
			name: "SavingsWithoutRate",
			arg:  domain.EditAccountParams{AccountType: domain.AccountTypeSavings, MaturityDate: &maturity},
			buildStubs: func(ledger *MockLedger) {
				ledger.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrSavingsTermsRequired,
		},
		{
			name: "NotFound",
			arg:  domain.EditAccountParams{AccountType: domain.AccountTypeCurrent},
			buildStubs: func(ledger *MockLedger) {
				ledger.EXPECT().Get(gomock.Any(), "A1").Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
				ledger.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "UpdateFails",
			arg:  domain.EditAccountParams{AccountType: domain.AccountTypeCurrent},
			buildStubs: func(ledger *MockLedger) {
				ledger.EXPECT().Get(gomock.Any(), "A1").Times(1).Return(current, nil)
				ledger.EXPECT().Update(gomock.Any(), gomock.Any()).Times(1).Return(errorspkg.ErrUpstream)
				ledger.EXPECT().List(gomock.Any()).Times(0)
			},
			wantErr: errorspkg.ErrUpstream,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ledger := NewMockLedger(ctrl)
			tc.buildStubs(ledger)

			got, err := New(ledger).Edit(context.Background(), "A1", tc.arg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.True(t, got[0].Balance.Equal(current.Balance), "balance must not change")
		})
	}
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)

	gomock.InOrder(
		ledger.EXPECT().Delete(gomock.Any(), "A1").Times(1).Return(nil),
		ledger.EXPECT().List(gomock.Any()).Times(1).Return([]domain.Account{{ID: "A2"}}, nil),
	)

	got, err := New(ledger).Delete(context.Background(), "A1")
	require.NoError(t, err)
	require.Equal(t, []domain.Account{{ID: "A2"}}, got)
}

func TestList(t *testing.T) {
	accounts := []domain.Account{
		{ID: "A1", CustomerID: "C1", UniqueAccountNumber: strPtr("TR0001"), Balance: decimal.NewFromInt(5)},
		{ID: "A2", CustomerID: "C2", Balance: decimal.NewFromInt(1)},
		{ID: "A3", CustomerID: "C3", UniqueAccountNumber: strPtr("DE0001"), Balance: decimal.NewFromInt(3)},
	}

	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	ledger.EXPECT().List(gomock.Any()).Times(2).Return(accounts, nil)

	got, err := New(ledger).List(context.Background(), listpkg.Query{Search: "tr00"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "A1", got[0].ID)

	got, err = New(ledger).List(context.Background(), listpkg.Query{SortBy: "balance", Order: listpkg.Asc})
	require.NoError(t, err)
	require.Equal(t, "A2", got[0].ID)
	require.Equal(t, "A1", got[2].ID)
}
