package entities

import "testing"

func TestStatusStage(t *testing.T) {
	cases := []struct {
		status Status
		want   Stage
	}{
		{StatusSubmitted, StagePending},
		{StatusPaymentPending, StagePending},
		{StatusApprovalPending, StagePending},
		{StatusRescheduleRequested, StagePending},
		{StatusApproved, StageInProgress},
		{StatusScheduled, StageInProgress},
		{StatusParcelExpected, StageInProgress},
		{StatusParcelArrived, StageInProgress},
		{StatusInStorage, StageInProgress},
		{StatusPreparingDispatch, StageInProgress},
		{StatusOutForDelivery, StageInProgress},
		{StatusDelivered, StageDelivered},
		{StatusRejected, StageRejected},
		{StatusIssueReported, StageRejected},
		{StatusCancelled, StageCancelled},
		{Status("totally_made_up"), StageUnknown},
		{Status(""), StageUnknown},
	}

	for _, tc := range cases {
		if got := tc.status.Stage(); got != tc.want {
			t.Fatalf("Stage(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusIsKnown(t *testing.T) {
	if !StatusInStorage.IsKnown() {
		t.Fatalf("expected in_storage to be known")
	}
	if Status("warp_speed").IsKnown() {
		t.Fatalf("expected unrecognized status to be unknown")
	}
}
