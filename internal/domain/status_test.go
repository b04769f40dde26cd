package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoanStatusNext(t *testing.T) {
	testCases := []struct {
		name      string
		from      LoanStatus
		to        LoanStatus
		wantApply bool
		wantErr   error
	}{
		{name: "PendingToApproved", from: LoanPending, to: LoanApproved, wantApply: true},
		{name: "PendingToRejected", from: LoanPending, to: LoanRejected, wantApply: true},
		{name: "ApproveTwice", from: LoanApproved, to: LoanApproved},
		{name: "RejectTwice", from: LoanRejected, to: LoanRejected},
		{name: "ApprovedToRejected", from: LoanApproved, to: LoanRejected, wantErr: ErrInvalidTransition},
		{name: "RejectedToApproved", from: LoanRejected, to: LoanApproved, wantErr: ErrInvalidTransition},
		{name: "ApprovedToPending", from: LoanApproved, to: LoanPending, wantErr: ErrInvalidTransition},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			apply, err := tc.from.Next(tc.to)
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, tc.wantApply, apply)
		})
	}
}

func TestTransferStatusNext(t *testing.T) {
	testCases := []struct {
		name      string
		from      TransferStatus
		to        TransferStatus
		wantApply bool
		wantErr   error
	}{
		{name: "PendingToCompleted", from: TransferPending, to: TransferCompleted, wantApply: true},
		{name: "PendingToFailed", from: TransferPending, to: TransferFailed, wantApply: true},
		{name: "Same", from: TransferCompleted, to: TransferCompleted},
		{name: "CompletedToFailed", from: TransferCompleted, to: TransferFailed, wantErr: ErrInvalidTransition},
		{name: "FailedToPending", from: TransferFailed, to: TransferPending, wantErr: ErrInvalidTransition},
		{name: "Unknown", from: TransferPending, to: "SETTLED", wantErr: ErrInvalidTransferStatus},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			apply, err := tc.from.Next(tc.to)
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, tc.wantApply, apply)
		})
	}
}
